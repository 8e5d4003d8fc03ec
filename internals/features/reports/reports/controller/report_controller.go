// file: internals/features/reports/reports/controller/report_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type countRow struct {
	Label string `json:"label" gorm:"column:label"`
	Total int64  `json:"total" gorm:"column:total"`
}

type monthlyRow struct {
	Month string `json:"month" gorm:"column:month"`
	Total int64  `json:"total" gorm:"column:total"`
}

// GET /api/a/reports/orphans — ringkasan anak asuh per gender & kondisi kesehatan.
func (ctl *ReportController) OrphansSummary(c *fiber.Ctx) error {
	var byGender []countRow
	if err := ctl.DB.Raw(`
		SELECT orphan_gender AS label, COUNT(*) AS total
		FROM orphans
		GROUP BY orphan_gender
		ORDER BY orphan_gender`).Scan(&byGender).Error; err != nil {
		log.Printf("[ERROR] report orphans by gender: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	var byHealth []countRow
	if err := ctl.DB.Raw(`
		SELECT orphan_health_condition AS label, COUNT(*) AS total
		FROM orphans
		GROUP BY orphan_health_condition
		ORDER BY total DESC`).Scan(&byHealth).Error; err != nil {
		log.Printf("[ERROR] report orphans by health: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	var studying int64
	if err := ctl.DB.Raw(`SELECT COUNT(*) FROM orphans WHERE orphan_is_studying`).Scan(&studying).Error; err != nil {
		log.Printf("[ERROR] report orphans studying: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"by_gender":           byGender,
		"by_health_condition": byHealth,
		"studying_count":      studying,
	})
}

// GET /api/a/reports/sponsorships — status sponsorship + anak tanpa sponsor aktif.
func (ctl *ReportController) SponsorshipsSummary(c *fiber.Ctx) error {
	var byStatus []countRow
	if err := ctl.DB.Raw(`
		SELECT sponsorship_status AS label, COUNT(*) AS total
		FROM sponsorships
		GROUP BY sponsorship_status
		ORDER BY sponsorship_status`).Scan(&byStatus).Error; err != nil {
		log.Printf("[ERROR] report sponsorships by status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	var unsponsored int64
	if err := ctl.DB.Raw(`
		SELECT COUNT(*) FROM orphans o
		WHERE NOT EXISTS (
			SELECT 1 FROM sponsorships s
			WHERE s.sponsorship_orphan_id = o.orphan_id
			  AND s.sponsorship_status = 'active'
		)`).Scan(&unsponsored).Error; err != nil {
		log.Printf("[ERROR] report unsponsored orphans: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"by_status":          byStatus,
		"orphans_no_sponsor": unsponsored,
	})
}

// GET /api/a/reports/visits — kunjungan per bulan (12 bulan terakhir).
func (ctl *ReportController) VisitsSummary(c *fiber.Ctx) error {
	var rows []monthlyRow
	if err := ctl.DB.Raw(`
		SELECT to_char(date_trunc('month', field_visit_date), 'YYYY-MM') AS month,
		       COUNT(*) AS total
		FROM field_visits
		WHERE field_visit_date >= date_trunc('month', now()) - interval '11 months'
		GROUP BY 1
		ORDER BY 1`).Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] report visits per month: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	return helper.JsonOK(c, "", fiber.Map{"per_month": rows})
}

// GET /api/a/reports/donations — total donasi terbayar per bulan + grand total.
func (ctl *ReportController) DonationsSummary(c *fiber.Ctx) error {
	var rows []monthlyRow
	if err := ctl.DB.Raw(`
		SELECT to_char(date_trunc('month', donation_paid_at), 'YYYY-MM') AS month,
		       COALESCE(SUM(donation_amount), 0) AS total
		FROM donations
		WHERE donation_status = 'paid' AND donation_paid_at IS NOT NULL
		GROUP BY 1
		ORDER BY 1`).Scan(&rows).Error; err != nil {
		log.Printf("[ERROR] report donations per month: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	var grandTotal int64
	if err := ctl.DB.Raw(`
		SELECT COALESCE(SUM(donation_amount), 0)
		FROM donations
		WHERE donation_status = 'paid'`).Scan(&grandTotal).Error; err != nil {
		log.Printf("[ERROR] report donations total: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"per_month":   rows,
		"grand_total": grandTotal,
	})
}
