// file: internals/features/sponsorships/sponsorships/controller/sponsorship_controller.go
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

	"yatimku_backend/internals/features/sponsorships/sponsorships/dto"
	"yatimku_backend/internals/features/sponsorships/sponsorships/model"
)

type SponsorshipController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSponsorshipController(db *gorm.DB, v *validator.Validate) *SponsorshipController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &SponsorshipController{DB: db, Validate: v}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

/* ============================ SPONSORSHIPS ============================ */

// POST /api/a/sponsorships
func (ctl *SponsorshipController) Create(c *fiber.Ctx) error {
	var req dto.CreateSponsorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.SponsorshipModel{
		SponsorshipOrphanID:       req.OrphanID,
		SponsorshipOrganizationID: req.OrganizationID,
		SponsorshipStatus:         model.SponsorshipStatusPending,
		SponsorshipStartDate:      parseDate(req.StartDate),
		SponsorshipEndDate:        parseDate(req.EndDate),
		SponsorshipMonthlyAmount:  req.MonthlyAmount,
		SponsorshipNotes:          req.Notes,
	}
	if req.Status != nil {
		row.SponsorshipStatus = *req.Status
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create sponsorship: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sponsorship")
	}

	return helper.JsonCreated(c, "Sponsorship berhasil dibuat", row)
}

// GET /api/a/sponsorships?status=&orphan_id=&organization_id=
func (ctl *SponsorshipController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SponsorshipModel{})
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("sponsorship_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("orphan_id")); v != "" {
		q = q.Where("sponsorship_orphan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("organization_id")); v != "" {
		q = q.Where("sponsorship_organization_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count sponsorships: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sponsorship")
	}

	var rows []model.SponsorshipModel
	if err := q.Order("sponsorship_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list sponsorships: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sponsorship")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/sponsorships/:id
func (ctl *SponsorshipController) GetByID(c *fiber.Ctx) error {
	var row model.SponsorshipModel
	if err := ctl.DB.First(&row, "sponsorship_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sponsorship tidak ditemukan")
		}
		log.Printf("[ERROR] get sponsorship: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data sponsorship")
	}
	return helper.JsonOK(c, "", row)
}

// PATCH /api/a/sponsorships/:id
func (ctl *SponsorshipController) Update(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableSponsorshipFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.SponsorshipModel{}).
		Where("sponsorship_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update sponsorship: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah sponsorship")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsorship tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Sponsorship berhasil diubah", fiber.Map{"sponsorship_id": c.Params("id")})
}

// DELETE /api/a/sponsorships/:id
func (ctl *SponsorshipController) Delete(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.SponsorshipModel{}, "sponsorship_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete sponsorship: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sponsorship")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sponsorship tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Sponsorship berhasil dihapus", fiber.Map{"sponsorship_id": c.Params("id")})
}
