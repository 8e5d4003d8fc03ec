// file: internals/features/organizations/legacy/service/convert_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

func mktOrgRows(converted bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"marketing_org_id", "marketing_org_name", "marketing_org_converted_to_sponsor",
	}).AddRow(uint(3), "Yayasan Peduli", converted)
}

func TestConvertMarketingOrg_Success(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "marketing_organizations"`).
		WillReturnRows(mktOrgRows(false))
	mock.ExpectQuery(`INSERT INTO "sponsor_organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"sponsor_org_id"}).AddRow(uint(15)))
	mock.ExpectExec(`UPDATE "marketing_organizations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "sponsorships"`).
		WillReturnRows(sqlmock.NewRows([]string{"sponsorship_id"}).AddRow(uint(1)))
	mock.ExpectExec(`UPDATE "marketing_records"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "sponsorships"`).
		WillReturnRows(sqlmock.NewRows([]string{"sponsorship_id"}).AddRow(uint(2)))
	mock.ExpectExec(`UPDATE "marketing_records"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	res, err := ConvertMarketingOrg(db, 3, []uint{21, 22})
	require.NoError(t, err)
	assert.Equal(t, uint(15), res.SponsorOrgID)
	assert.Equal(t, 2, res.SponsorshipsAdded)
	assert.Equal(t, 1, res.MarketingRecordsOK)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertMarketingOrg_AlreadyConverted(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "marketing_organizations"`).
		WillReturnRows(mktOrgRows(true))
	mock.ExpectRollback()

	res, err := ConvertMarketingOrg(db, 3, nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Dua request berbarengan: pembacaan awal masih false, tapi UPDATE kondisional
// kalah cepat (0 row) → konflik, tidak ada sponsorship yang dibuat.
func TestConvertMarketingOrg_LosesRace(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "marketing_organizations"`).
		WillReturnRows(mktOrgRows(false))
	mock.ExpectQuery(`INSERT INTO "sponsor_organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"sponsor_org_id"}).AddRow(uint(16)))
	mock.ExpectExec(`UPDATE "marketing_organizations"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	res, err := ConvertMarketingOrg(db, 3, []uint{21})
	require.Error(t, err)
	assert.Nil(t, res)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConvertMarketingOrg_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "marketing_organizations"`).
		WillReturnRows(sqlmock.NewRows([]string{"marketing_org_id"}))
	mock.ExpectRollback()

	res, err := ConvertMarketingOrg(db, 99, nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
