// file: internals/features/organizations/organizations/controller/organization_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/organizations/organizations/dto"
	"yatimku_backend/internals/features/organizations/organizations/model"
)

type OrganizationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrganizationController(db *gorm.DB, v *validator.Validate) *OrganizationController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &OrganizationController{DB: db, Validate: v}
}

/* ============================ CREATE ============================ */

// POST /api/a/organizations
func (ctl *OrganizationController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.OrganizationModel{
		OrganizationUID:             uuid.New(),
		OrganizationName:            strings.TrimSpace(req.Name),
		OrganizationEmail:           req.Email,
		OrganizationPhone:           req.Phone,
		OrganizationContactPerson:   req.ContactPerson,
		OrganizationCountry:         req.Country,
		OrganizationSponsorshipType: req.SponsorshipType,
		OrganizationNotes:           req.Notes,
	}
	if req.IsSponsor != nil {
		row.OrganizationIsSponsor = *req.IsSponsor
	}
	if req.IsMarketing != nil {
		row.OrganizationIsMarketing = *req.IsMarketing
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create organization: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data lembaga")
	}

	return helper.JsonCreated(c, "Data lembaga berhasil dibuat", row)
}

/* ============================ LIST ============================ */

// GET /api/a/organizations?is_sponsor=&is_marketing=&q=
func (ctl *OrganizationController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.OrganizationModel{})
	if v := strings.TrimSpace(c.Query("is_sponsor")); v != "" {
		q = q.Where("organization_is_sponsor = ?", v == "true" || v == "1")
	}
	if v := strings.TrimSpace(c.Query("is_marketing")); v != "" {
		q = q.Where("organization_is_marketing = ?", v == "true" || v == "1")
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("organization_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count organizations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga")
	}

	var rows []model.OrganizationModel
	if err := q.Order("organization_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list organizations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

/* ============================ DETAIL / UPDATE / DELETE ============================ */

// GET /api/a/organizations/:id
func (ctl *OrganizationController) GetByID(c *fiber.Ctx) error {
	var row model.OrganizationModel
	if err := ctl.DB.First(&row, "organization_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data lembaga tidak ditemukan")
		}
		log.Printf("[ERROR] get organization: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga")
	}
	return helper.JsonOK(c, "", row)
}

// PATCH /api/a/organizations/:id
func (ctl *OrganizationController) Update(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableOrganizationFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.OrganizationModel{}).
		Where("organization_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update organization: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah data lembaga")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data lembaga tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Data lembaga berhasil diubah", fiber.Map{"organization_id": c.Params("id")})
}

// DELETE /api/a/organizations/:id
func (ctl *OrganizationController) Delete(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.OrganizationModel{}, "organization_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete organization: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data lembaga")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Data lembaga tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Data lembaga berhasil dihapus", fiber.Map{"organization_id": c.Params("id")})
}
