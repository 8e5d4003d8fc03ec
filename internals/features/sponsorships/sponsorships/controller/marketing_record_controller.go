// file: internals/features/sponsorships/sponsorships/controller/marketing_record_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/sponsorships/sponsorships/dto"
	"yatimku_backend/internals/features/sponsorships/sponsorships/model"
)

/* ============================ MARKETING RECORDS ============================ */

// POST /api/a/marketing-records
func (ctl *SponsorshipController) CreateMarketingRecord(c *fiber.Ctx) error {
	var req dto.CreateMarketingRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.MarketingRecordModel{
		MarketingRecordOrphanID:       req.OrphanID,
		MarketingRecordOrganizationID: req.OrganizationID,
		MarketingRecordStatus:         model.MarketingRecordStatusMarketed,
		MarketingRecordDate:           parseDate(req.Date),
		MarketingRecordNotes:          req.Notes,
	}
	if req.Status != nil {
		row.MarketingRecordStatus = *req.Status
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create marketing record: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat marketing record")
	}

	return helper.JsonCreated(c, "Marketing record berhasil dibuat", row)
}

// GET /api/a/marketing-records?status=&orphan_id=&organization_id=
func (ctl *SponsorshipController) GetAllMarketingRecords(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.MarketingRecordModel{})
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("marketing_record_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("orphan_id")); v != "" {
		q = q.Where("marketing_record_orphan_id = ?", v)
	}
	if v := strings.TrimSpace(c.Query("organization_id")); v != "" {
		q = q.Where("marketing_record_organization_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count marketing records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil marketing records")
	}

	var rows []model.MarketingRecordModel
	if err := q.Order("marketing_record_id DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list marketing records: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil marketing records")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// PATCH /api/a/marketing-records/:id
func (ctl *SponsorshipController) UpdateMarketingRecord(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableMarketingRecordFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.MarketingRecordModel{}).
		Where("marketing_record_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update marketing record: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah marketing record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Marketing record tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Marketing record berhasil diubah", fiber.Map{"marketing_record_id": c.Params("id")})
}

// DELETE /api/a/marketing-records/:id
func (ctl *SponsorshipController) DeleteMarketingRecord(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.MarketingRecordModel{}, "marketing_record_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete marketing record: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus marketing record")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Marketing record tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Marketing record berhasil dihapus", fiber.Map{"marketing_record_id": c.Params("id")})
}
