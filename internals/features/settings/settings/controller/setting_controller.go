// file: internals/features/settings/settings/controller/setting_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/settings/settings/dto"
	"yatimku_backend/internals/features/settings/settings/model"
)

type SettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingController(db *gorm.DB, v *validator.Validate) *SettingController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SettingController{DB: db, Validate: v}
}

// GET /api/a/settings — baris tunggal, dibuat kosong kalau belum ada.
func (ctl *SettingController) Get(c *fiber.Ctx) error {
	var row model.SettingModel
	err := ctl.DB.First(&row, "setting_id = ?", model.SettingSentinelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = model.SettingModel{SettingID: model.SettingSentinelID}
		if err := ctl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
			log.Printf("[ERROR] init settings: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan settings")
		}
		return helper.JsonOK(c, "", row)
	}
	if err != nil {
		log.Printf("[ERROR] get settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil settings")
	}
	return helper.JsonOK(c, "", row)
}

// PATCH /api/a/settings
// Upsert satu statement ke baris sentinel: INSERT .. ON CONFLICT DO UPDATE,
// supaya save pertama yang balapan tidak bisa bikin PK bentrok.
func (ctl *SettingController) Update(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableSettingFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	cols := make([]string, 0, len(updates))
	for col := range updates {
		cols = append(cols, col)
	}
	updates["setting_id"] = model.SettingSentinelID

	err := ctl.DB.Model(&model.SettingModel{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_id"}},
			DoUpdates: clause.AssignmentColumns(cols),
		}).
		Create(updates).Error
	if err != nil {
		log.Printf("[ERROR] update settings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah settings")
	}

	return helper.JsonUpdated(c, "Settings berhasil diubah", fiber.Map{"setting_id": model.SettingSentinelID})
}
