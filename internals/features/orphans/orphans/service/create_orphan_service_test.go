// file: internals/features/orphans/orphans/service/create_orphan_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"yatimku_backend/internals/features/orphans/orphans/dto"
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

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateOrphanAggregate_FullFamily(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "fathers"`).
		WillReturnRows(sqlmock.NewRows([]string{"father_id"}).AddRow(uint(7)))
	mock.ExpectQuery(`INSERT INTO "mothers"`).
		WillReturnRows(sqlmock.NewRows([]string{"mother_id"}).AddRow(uint(8)))
	mock.ExpectQuery(`INSERT INTO "residence_infos"`).
		WillReturnRows(sqlmock.NewRows([]string{"residence_id"}).AddRow(uint(3)))
	// row anak merujuk id father/mother/residence hasil resolve di atas
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WithArgs(sqlmock.AnyArg(), nil, "Ahmad Fauzi", nil, "male", nil,
			"healthy", nil, true, nil, nil, false, 0, 0,
			7, 8, nil, 3, true, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(42)))
	// sibling mewarisi orphan_id baru + father/mother milik anak utama
	mock.ExpectQuery(`INSERT INTO "orphan_siblings"`).
		WithArgs(sqlmock.AnyArg(), 42, "Rina", nil, "male", true,
			7, 8, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sibling_id"}).AddRow(uint(1)))
	mock.ExpectQuery(`INSERT INTO "orphan_siblings"`).
		WithArgs(sqlmock.AnyArg(), 42, "Dodi", nil, "male", true,
			7, 8, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"sibling_id"}).AddRow(uint(2)))
	mock.ExpectCommit()

	req := &dto.CreateOrphanRequest{
		FullName:      "Ahmad Fauzi",
		FatherData:    &dto.FatherData{FullName: strPtr("Budi Santoso")},
		MotherData:    &dto.MotherData{FullName: strPtr("Siti Aminah")},
		ResidenceData: &dto.ResidenceData{City: strPtr("Bandung")},
		Siblings: []dto.SiblingData{
			{FullName: "Rina"},
			{FullName: "Dodi", Gender: strPtr("male")},
		},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.NoError(t, err)
	assert.Equal(t, uint(42), res.OrphanID)
	assert.Equal(t, 2, res.SiblingsAdded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Field opsional tidak dikirim → nilai default ikut tersimpan di row,
// bukan dibiarkan kosong: healthy, is_studying true, memorizes_quran false,
// gender male, mother_is_custodian true.
func TestCreateOrphanAggregate_DefaultsStoredWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WithArgs(sqlmock.AnyArg(), nil, "Ilham", nil, "male", nil,
			"healthy", nil, true, nil, nil, false, 0, 0,
			nil, nil, nil, nil, true, nil,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(21)))
	mock.ExpectCommit()

	req := &dto.CreateOrphanRequest{FullName: "Ilham"}

	res, err := CreateOrphanAggregate(db, req)
	require.NoError(t, err)
	assert.Equal(t, uint(21), res.OrphanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Ibu pengasuh (default) → data wali diabaikan walau dikirim lengkap.
func TestCreateOrphanAggregate_GuardianSkippedWhenMotherCustodian(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "mothers"`).
		WillReturnRows(sqlmock.NewRows([]string{"mother_id"}).AddRow(uint(5)))
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(9)))
	mock.ExpectCommit()

	req := &dto.CreateOrphanRequest{
		FullName:     "Aisyah",
		MotherData:   &dto.MotherData{FullName: strPtr("Dewi Lestari")},
		GuardianData: &dto.GuardianData{FullName: strPtr("Pak RT")},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.NoError(t, err)
	assert.Equal(t, uint(9), res.OrphanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Ibu bukan pengasuh + nama wali terisi → row guardian ikut dibuat.
func TestCreateOrphanAggregate_GuardianCreatedWhenNotCustodian(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "guardians"`).
		WillReturnRows(sqlmock.NewRows([]string{"guardian_id"}).AddRow(uint(4)))
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(11)))
	mock.ExpectCommit()

	req := &dto.CreateOrphanRequest{
		FullName:          "Hasan",
		MotherIsCustodian: boolPtr(false),
		GuardianData:      &dto.GuardianData{FullName: strPtr("Haji Mahmud")},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.NoError(t, err)
	assert.Equal(t, uint(11), res.OrphanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Objek dikirim tapi full_name kosong → tidak ada row relasi yang dibuat.
func TestCreateOrphanAggregate_EmptyNamesSkipRelatives(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(1)))
	mock.ExpectCommit()

	req := &dto.CreateOrphanRequest{
		FullName:   "Umar",
		FatherData: &dto.FatherData{FullName: strPtr("   ")},
		MotherData: &dto.MotherData{Occupation: strPtr("pedagang")},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.NoError(t, err)
	assert.Equal(t, uint(1), res.OrphanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Insert sibling gagal di tengah → seluruh transaksi di-rollback.
func TestCreateOrphanAggregate_RollsBackOnSiblingError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "mothers"`).
		WillReturnRows(sqlmock.NewRows([]string{"mother_id"}).AddRow(uint(2)))
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(3)))
	mock.ExpectQuery(`INSERT INTO "orphan_siblings"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	req := &dto.CreateOrphanRequest{
		FullName:   "Zaid",
		MotherData: &dto.MotherData{FullName: strPtr("Fatimah")},
		Siblings:   []dto.SiblingData{{FullName: "Zainab"}},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.Error(t, err)
	assert.Nil(t, res)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Nama sibling kosong → 400, tidak ada yang tersimpan.
func TestCreateOrphanAggregate_SiblingNameRequired(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "orphans"`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}).AddRow(uint(6)))
	mock.ExpectRollback()

	req := &dto.CreateOrphanRequest{
		FullName: "Salman",
		Siblings: []dto.SiblingData{{FullName: "  "}},
	}

	res, err := CreateOrphanAggregate(db, req)
	require.Error(t, err)
	assert.Nil(t, res)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
