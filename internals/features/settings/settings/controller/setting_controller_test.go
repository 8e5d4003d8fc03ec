// file: internals/features/settings/settings/controller/setting_controller_test.go
package controller

import (
	"net/http/httptest"
	"strings"
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

func newSettingApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctl := NewSettingController(db, nil)
	app.Patch("/settings", ctl.Update)
	return app
}

// Save pertama dan save berikutnya lewat SATU statement upsert ke baris
// sentinel; tidak ada pasangan Create+Updates terpisah yang bisa balapan.
func TestSettingUpdate_SingleStatementUpsert(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings" .+ ON CONFLICT \("setting_id"\) DO UPDATE SET`).
		WithArgs("Yayasan Yatimku Indonesia", 1, "081234567890").
		WillReturnRows(sqlmock.NewRows([]string{"setting_id"}).AddRow(uint(1)))
	mock.ExpectCommit()

	body := `{"foundation_name":"Yayasan Yatimku Indonesia","phone":"081234567890"}`
	req := httptest.NewRequest("PATCH", "/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newSettingApp(db).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Body tanpa field yang dikenal allow-list → 400, tidak menyentuh DB.
func TestSettingUpdate_UnknownFieldsRejected(t *testing.T) {
	db, mock := newMockDB(t)

	body := `{"setting_id":99,"hacker_field":"x"}`
	req := httptest.NewRequest("PATCH", "/settings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := newSettingApp(db).Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
