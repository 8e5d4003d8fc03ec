package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestEnsureColumn_AddsColumn(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`ALTER TABLE orphans ADD COLUMN orphan_memorizes_quran`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := EnsureColumn(db, "orphans", "orphan_memorizes_quran BOOLEAN NOT NULL DEFAULT FALSE")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Kolom sudah ada (42701) → dianggap sukses, migrasi aman dijalankan ulang.
func TestEnsureColumn_SuppressesDuplicateColumn(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`ALTER TABLE mothers ADD COLUMN mother_is_custodian`).
		WillReturnError(&pq.Error{Code: "42701", Message: "column already exists"})

	err := EnsureColumn(db, "mothers", "mother_is_custodian BOOLEAN NOT NULL DEFAULT TRUE")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureColumn_SuppressesDuplicateByMessage(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`ALTER TABLE settings ADD COLUMN`).
		WillReturnError(errors.New(`ERROR: column "setting_default_organization_id" of relation "settings" already exists (SQLSTATE 42701)`))

	err := EnsureColumn(db, "settings", "setting_default_organization_id BIGINT")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureColumn_PropagatesOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`ALTER TABLE orphans ADD COLUMN`).
		WillReturnError(&pq.Error{Code: "42P01", Message: "relation does not exist"})

	err := EnsureColumn(db, "orphans", "orphan_notes TEXT")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
