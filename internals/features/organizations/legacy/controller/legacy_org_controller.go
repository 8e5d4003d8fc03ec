// file: internals/features/organizations/legacy/controller/legacy_org_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/organizations/legacy/model"
	"yatimku_backend/internals/features/organizations/legacy/service"
)

// LegacyOrgController melayani skema lama (dua tabel terpisah), read-only
// untuk data historis, plus konversi satu arah marketing → sponsor.
type LegacyOrgController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLegacyOrgController(db *gorm.DB, v *validator.Validate) *LegacyOrgController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &LegacyOrgController{DB: db, Validate: v}
}

/* ============================ READ-ONLY LISTS ============================ */

// GET /api/a/legacy/sponsor-organizations
func (ctl *LegacyOrgController) GetAllSponsorOrgs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.SponsorOrganizationModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count sponsor orgs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga sponsor")
	}

	var rows []model.SponsorOrganizationModel
	if err := ctl.DB.Order("sponsor_org_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list sponsor orgs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga sponsor")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/legacy/marketing-organizations
func (ctl *LegacyOrgController) GetAllMarketingOrgs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.MarketingOrganizationModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count marketing orgs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga marketing")
	}

	var rows []model.MarketingOrganizationModel
	if err := ctl.DB.Order("marketing_org_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list marketing orgs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga marketing")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/legacy/marketing-organizations/:id
func (ctl *LegacyOrgController) GetMarketingOrgByID(c *fiber.Ctx) error {
	var row model.MarketingOrganizationModel
	if err := ctl.DB.First(&row, "marketing_org_id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Lembaga marketing tidak ditemukan")
		}
		log.Printf("[ERROR] get marketing org: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data lembaga marketing")
	}
	return helper.JsonOK(c, "", row)
}

/* ============================ KONVERSI ============================ */

// POST /api/a/legacy/marketing-organizations/:id/convert
func (ctl *LegacyOrgController) Convert(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID lembaga tidak valid")
	}

	var req struct {
		SponsoredOrphanIDs []uint `json:"sponsored_orphan_ids" validate:"omitempty,dive,min=1"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		if err := ctl.Validate.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
		}
	}

	result, err := service.ConvertMarketingOrg(ctl.DB, uint(id), req.SponsoredOrphanIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Lembaga berhasil dikonversi menjadi sponsor", result)
}
