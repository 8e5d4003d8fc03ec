// file: internals/features/documents/visits/controller/visit_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/documents/visits/dto"
	"yatimku_backend/internals/features/documents/visits/model"
)

type FieldVisitController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFieldVisitController(db *gorm.DB, v *validator.Validate) *FieldVisitController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &FieldVisitController{DB: db, Validate: v}
}

// POST /api/a/field-visits
func (ctl *FieldVisitController) Create(c *fiber.Ctx) error {
	var req dto.CreateFieldVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	visitDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal kunjungan tidak valid")
	}

	row := model.FieldVisitModel{
		FieldVisitOrphanID:    req.OrphanID,
		FieldVisitVisitorName: req.VisitorName,
		FieldVisitPurpose:     req.Purpose,
		FieldVisitDate:        visitDate,
		FieldVisitSummary:     req.Summary,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create field visit: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kunjungan")
	}

	return helper.JsonCreated(c, "Kunjungan berhasil dicatat", row)
}

// GET /api/a/field-visits?orphan_id=&visitor=&from=&to=
func (ctl *FieldVisitController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.FieldVisitModel{})
	if v := strings.TrimSpace(c.Query("orphan_id")); v != "" {
		q = q.Where("field_visit_orphan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("visitor")); v != "" {
		q = q.Where("field_visit_visitor_name ILIKE ?", "%"+v+"%")
	}
	if v := strings.TrimSpace(c.Query("from")); v != "" {
		q = q.Where("field_visit_date >= ?", v)
	}
	if v := strings.TrimSpace(c.Query("to")); v != "" {
		q = q.Where("field_visit_date <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count field visits: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kunjungan")
	}

	var rows []model.FieldVisitModel
	if err := q.Order("field_visit_date DESC, field_visit_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list field visits: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kunjungan")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/field-visits/:id
func (ctl *FieldVisitController) GetByID(c *fiber.Ctx) error {
	var row model.FieldVisitModel
	if err := ctl.DB.First(&row, "field_visit_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kunjungan tidak ditemukan")
		}
		log.Printf("[ERROR] get field visit: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kunjungan")
	}
	return helper.JsonOK(c, "", row)
}

// PATCH /api/a/field-visits/:id
func (ctl *FieldVisitController) Update(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableFieldVisitFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.FieldVisitModel{}).
		Where("field_visit_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update field visit: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah kunjungan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kunjungan tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Kunjungan berhasil diubah", fiber.Map{"field_visit_id": c.Params("id")})
}

// DELETE /api/a/field-visits/:id
func (ctl *FieldVisitController) Delete(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.FieldVisitModel{}, "field_visit_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete field visit: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kunjungan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kunjungan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Kunjungan berhasil dihapus", fiber.Map{"field_visit_id": c.Params("id")})
}
