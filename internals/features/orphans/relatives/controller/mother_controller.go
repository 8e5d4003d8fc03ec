// file: internals/features/orphans/relatives/controller/mother_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/orphans/relatives/dto"
	"yatimku_backend/internals/features/orphans/relatives/model"
)

/* ============================ MOTHERS ============================ */

// GET /api/a/mothers?q=&is_custodian=
func (ctl *RelativesController) GetAllMothers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MotherModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("mother_full_name ILIKE ?", "%"+search+"%")
	}
	if v := strings.TrimSpace(c.Query("is_custodian")); v != "" {
		q = q.Where("mother_is_custodian = ?", v == "true" || v == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count mothers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ibu")
	}

	var rows []model.MotherModel
	if err := q.Order("mother_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list mothers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ibu")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/mothers/:id
func (ctl *RelativesController) GetMotherByID(c *fiber.Ctx) error {
	var row model.MotherModel
	return ctl.firstByID(c, &row, "mother_id", "ibu")
}

// POST /api/a/mothers
func (ctl *RelativesController) CreateMother(c *fiber.Ctx) error {
	var req struct {
		FullName        string  `json:"full_name" validate:"required,max=200"`
		MaritalStatus   *string `json:"marital_status" validate:"omitempty,oneof=widow remarried divorced deceased"`
		IsCustodian     *bool   `json:"is_custodian"`
		HealthCondition *string `json:"health_condition" validate:"omitempty,max=30"`
		Occupation      *string `json:"occupation" validate:"omitempty,max=120"`
		Phone           *string `json:"phone" validate:"omitempty,max=30"`
		Notes           *string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.MotherModel{
		MotherUID:             uuid.New(),
		MotherFullName:        strings.TrimSpace(req.FullName),
		MotherMaritalStatus:   model.DefaultMaritalStatus,
		MotherIsCustodian:     true,
		MotherHealthCondition: req.HealthCondition,
		MotherOccupation:      req.Occupation,
		MotherPhone:           req.Phone,
		MotherNotes:           req.Notes,
	}
	if req.MaritalStatus != nil {
		row.MotherMaritalStatus = *req.MaritalStatus
	}
	if req.IsCustodian != nil {
		row.MotherIsCustodian = *req.IsCustodian
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create mother: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data ibu")
	}

	return helper.JsonCreated(c, "Data ibu berhasil dibuat", row)
}

// PATCH /api/a/mothers/:id
func (ctl *RelativesController) UpdateMother(c *fiber.Ctx) error {
	return ctl.partialUpdate(c, "mothers", "mother_id", dto.UpdatableMotherFields, "ibu")
}

// DELETE /api/a/mothers/:id
// Sama seperti ayah: mengandalkan FK SET NULL, tidak diblok di handler.
func (ctl *RelativesController) DeleteMother(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.MotherModel{}, "mother_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete mother: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data ibu")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data ibu tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data ibu berhasil dihapus", fiber.Map{"id": c.Params("id")})
}
