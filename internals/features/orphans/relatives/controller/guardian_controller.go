// file: internals/features/orphans/relatives/controller/guardian_controller.go
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

/* ============================ GUARDIANS ============================ */

// GET /api/a/guardians?q=
func (ctl *RelativesController) GetAllGuardians(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.GuardianModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("guardian_full_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count guardians: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wali")
	}

	var rows []model.GuardianModel
	if err := q.Order("guardian_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list guardians: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wali")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/guardians/:id
func (ctl *RelativesController) GetGuardianByID(c *fiber.Ctx) error {
	var row model.GuardianModel
	return ctl.firstByID(c, &row, "guardian_id", "wali")
}

// POST /api/a/guardians
func (ctl *RelativesController) CreateGuardian(c *fiber.Ctx) error {
	var req struct {
		FullName     string  `json:"full_name" validate:"required,max=200"`
		Relationship *string `json:"relationship" validate:"omitempty,max=60"`
		Phone        *string `json:"phone" validate:"omitempty,max=30"`
		Occupation   *string `json:"occupation" validate:"omitempty,max=120"`
		Notes        *string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.GuardianModel{
		GuardianUID:          uuid.New(),
		GuardianFullName:     strings.TrimSpace(req.FullName),
		GuardianRelationship: req.Relationship,
		GuardianPhone:        req.Phone,
		GuardianOccupation:   req.Occupation,
		GuardianNotes:        req.Notes,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create guardian: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data wali")
	}

	return helper.JsonCreated(c, "Data wali berhasil dibuat", row)
}

// PATCH /api/a/guardians/:id
func (ctl *RelativesController) UpdateGuardian(c *fiber.Ctx) error {
	return ctl.partialUpdate(c, "guardians", "guardian_id", dto.UpdatableGuardianFields, "wali")
}

// DELETE /api/a/guardians/:id
// Beda dengan ayah/ibu: delete DIBLOK selama masih ada orphan yang merujuk.
func (ctl *RelativesController) DeleteGuardian(c *fiber.Ctx) error {
	id := c.Params("id")

	var refs int64
	if err := ctl.DB.Table("orphans").Where("orphan_guardian_id = ?", id).Count(&refs).Error; err != nil {
		log.Printf("[ERROR] cek referensi guardian %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa referensi wali")
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Wali masih dipakai oleh data anak, tidak bisa dihapus")
	}

	res := ctl.DB.Delete(&model.GuardianModel{}, "guardian_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete guardian: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data wali")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data wali tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data wali berhasil dihapus", fiber.Map{"id": id})
}
