// file: internals/features/orphans/orphans/controller/orphan_controller_test.go
package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

// Detail anak membawa nama relasi hasil join + daftar sibling, bukan cuma id.
func TestOrphanGetByID_DetailWithRelativeNamesAndSiblings(t *testing.T) {
	db, mock := newMockDB(t)

	uid := uuid.New()
	mock.ExpectQuery(`FROM "orphans" LEFT JOIN fathers`).
		WillReturnRows(sqlmock.NewRows([]string{
			"orphan_id", "orphan_uid", "orphan_full_name", "orphan_gender",
			"orphan_health_condition", "orphan_is_studying",
			"orphan_father_id", "father_name",
			"orphan_mother_id", "mother_name",
		}).AddRow(uint(42), uid.String(), "Ahmad Fauzi", "male",
			"healthy", true, uint(7), "Budi Santoso", uint(8), "Siti Aminah"))
	mock.ExpectQuery(`FROM "orphan_siblings"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"sibling_id", "sibling_full_name", "sibling_gender", "sibling_is_studying",
		}).AddRow(uint(1), "Rina", "female", true).
			AddRow(uint(2), "Dodi", "male", true))

	app := fiber.New()
	ctl := NewOrphanController(db, nil)
	app.Get("/orphans/:id", ctl.GetByID)

	resp, err := app.Test(httptest.NewRequest("GET", "/orphans/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Success bool                     `json:"success"`
		Data    dto.OrphanDetailResponse `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &body))

	assert.True(t, body.Success)
	assert.Equal(t, uint(42), body.Data.OrphanID)
	assert.Equal(t, "Ahmad Fauzi", body.Data.FullName)
	require.NotNil(t, body.Data.FatherName)
	assert.Equal(t, "Budi Santoso", *body.Data.FatherName)
	require.NotNil(t, body.Data.MotherName)
	assert.Equal(t, "Siti Aminah", *body.Data.MotherName)
	assert.Nil(t, body.Data.GuardianName)

	require.Len(t, body.Data.Siblings, 2)
	assert.Equal(t, "Rina", body.Data.Siblings[0].FullName)
	assert.Equal(t, "Dodi", body.Data.Siblings[1].FullName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Id tidak ada → 404, query sibling tidak ikut jalan.
func TestOrphanGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM "orphans" LEFT JOIN fathers`).
		WillReturnRows(sqlmock.NewRows([]string{"orphan_id"}))

	app := fiber.New()
	ctl := NewOrphanController(db, nil)
	app.Get("/orphans/:id", ctl.GetByID)

	resp, err := app.Test(httptest.NewRequest("GET", "/orphans/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
