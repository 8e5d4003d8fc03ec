// file: internals/features/orphans/orphans/controller/orphan_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/orphans/orphans/dto"
	"yatimku_backend/internals/features/orphans/orphans/model"
	"yatimku_backend/internals/features/orphans/orphans/service"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type OrphanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrphanController(db *gorm.DB, v *validator.Validate) *OrphanController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &OrphanController{DB: db, Validate: v}
}

/* ============================ CREATE (workflow agregat) ============================ */

// POST /api/a/orphans
func (ctl *OrphanController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrphanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	result, err := service.CreateOrphanAggregate(ctl.DB, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Data anak berhasil dibuat", dto.CreateOrphanResponse{
		OrphanID:      result.OrphanID,
		OrphanUID:     result.OrphanUID,
		SiblingsAdded: result.SiblingsAdded,
	})
}

/* ============================ LIST ============================ */

// GET /api/a/orphans?gender=&guardian_id=&q=&page=&per_page=
func (ctl *OrphanController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.OrphanModel{})
	if gender := strings.TrimSpace(c.Query("gender")); gender != "" {
		q = q.Where("orphan_gender = ?", gender)
	}
	if gid := strings.TrimSpace(c.Query("guardian_id")); gid != "" {
		q = q.Where("orphan_guardian_id = ?", gid)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("orphan_full_name ILIKE ? OR orphan_code ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count orphans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	var rows []model.OrphanModel
	if err := q.Order("orphan_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list orphans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

/* ============================ DETAIL ============================ */

// GET /api/a/orphans/:id — anak + nama relasi hasil join + daftar sibling
func (ctl *OrphanController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var detail dto.OrphanDetailResponse
	err := ctl.DB.Table("orphans").
		Select(`orphans.*,
			fathers.father_full_name AS father_name,
			mothers.mother_full_name AS mother_name,
			guardians.guardian_full_name AS guardian_name`).
		Joins("LEFT JOIN fathers ON fathers.father_id = orphans.orphan_father_id").
		Joins("LEFT JOIN mothers ON mothers.mother_id = orphans.orphan_mother_id").
		Joins("LEFT JOIN guardians ON guardians.guardian_id = orphans.orphan_guardian_id").
		Where("orphans.orphan_id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		log.Printf("[ERROR] detail orphan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	if err := ctl.DB.Table("orphan_siblings").
		Where("sibling_orphan_id = ?", detail.OrphanID).
		Order("sibling_id ASC").
		Find(&detail.Siblings).Error; err != nil {
		log.Printf("[ERROR] siblings orphan %d: %v", detail.OrphanID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sibling")
	}

	return helper.JsonOK(c, "", detail)
}

/* ============================ UPDATE (partial, allow-list) ============================ */

// PATCH /api/a/orphans/:id
func (ctl *OrphanController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableOrphanFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.OrphanModel{}).Where("orphan_id = ?", id).Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update orphan %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data anak")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Data anak berhasil diubah", fiber.Map{"orphan_id": id})
}

/* ============================ DELETE ============================ */

// DELETE /api/a/orphans/:id — hapus row lalu bersihkan file lampiran (best-effort)
func (ctl *OrphanController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var orphan model.OrphanModel
	if err := ctl.DB.First(&orphan, "orphan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data anak tidak ditemukan")
		}
		log.Printf("[ERROR] get orphan %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}

	if err := ctl.DB.Delete(&model.OrphanModel{}, "orphan_id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete orphan %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data anak")
	}

	// kompensasi file: dilog kalau gagal, tidak menggagalkan response
	helper.DeleteOrphanFiles(orphan.OrphanUID.String())

	return helper.JsonDeleted(c, "Data anak berhasil dihapus", fiber.Map{"orphan_id": orphan.OrphanID})
}
