// file: internals/features/orphans/relatives/controller/father_controller.go
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

/* ============================ FATHERS ============================ */

// GET /api/a/fathers?q=
func (ctl *RelativesController) GetAllFathers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FatherModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("father_full_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count fathers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ayah")
	}

	var rows []model.FatherModel
	if err := q.Order("father_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list fathers: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ayah")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/fathers/:id
func (ctl *RelativesController) GetFatherByID(c *fiber.Ctx) error {
	var row model.FatherModel
	return ctl.firstByID(c, &row, "father_id", "ayah")
}

// POST /api/a/fathers
func (ctl *RelativesController) CreateFather(c *fiber.Ctx) error {
	var req struct {
		FullName     string  `json:"full_name" validate:"required,max=200"`
		DateOfDeath  *string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
		CauseOfDeath *string `json:"cause_of_death"`
		Occupation   *string `json:"occupation" validate:"omitempty,max=120"`
		Notes        *string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.FatherModel{
		FatherUID:          uuid.New(),
		FatherFullName:     strings.TrimSpace(req.FullName),
		FatherCauseOfDeath: req.CauseOfDeath,
		FatherOccupation:   req.Occupation,
		FatherNotes:        req.Notes,
	}
	if req.DateOfDeath != nil {
		row.FatherDateOfDeath = parseDate(*req.DateOfDeath)
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create father: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data ayah")
	}

	return helper.JsonCreated(c, "Data ayah berhasil dibuat", row)
}

// PATCH /api/a/fathers/:id
func (ctl *RelativesController) UpdateFather(c *fiber.Ctx) error {
	return ctl.partialUpdate(c, "fathers", "father_id", dto.UpdatableFatherFields, "ayah")
}

// DELETE /api/a/fathers/:id
// Tidak diblok saat masih dirujuk orphan: FK orphan_father_id SET NULL di DB.
func (ctl *RelativesController) DeleteFather(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.FatherModel{}, "father_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete father: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data ayah")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data ayah tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data ayah berhasil dihapus", fiber.Map{"id": c.Params("id")})
}
