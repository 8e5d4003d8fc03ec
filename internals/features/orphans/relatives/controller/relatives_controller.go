// file: internals/features/orphans/relatives/controller/relatives_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"
)

// parseDate menerima "YYYY-MM-DD" yang sudah lolos validasi datetime.
func parseDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

/* =======================================================
   CONTROLLER (fathers / mothers / guardians / siblings)
   ======================================================= */

type RelativesController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRelativesController(db *gorm.DB, v *validator.Validate) *RelativesController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &RelativesController{DB: db, Validate: v}
}

// partialUpdate: pola update allow-list yang sama untuk semua entitas keluarga.
func (ctl *RelativesController) partialUpdate(c *fiber.Ctx, table, pkCol string, allow map[string]string, label string) error {
	id := c.Params("id")

	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, allow)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Table(table).Where(pkCol+" = ?", id).Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update %s %s: %v", table, id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data "+label)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data "+label+" tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Data "+label+" berhasil diubah", fiber.Map{"id": id})
}

func (ctl *RelativesController) firstByID(c *fiber.Ctx, dest any, pkCol, label string) error {
	id := c.Params("id")
	if err := ctl.DB.First(dest, pkCol+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data "+label+" tidak ditemukan")
		}
		log.Printf("[ERROR] get %s: %v", label, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data "+label)
	}
	return helper.JsonOK(c, "", dest)
}
