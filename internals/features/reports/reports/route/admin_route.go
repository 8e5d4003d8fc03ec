// file: internals/features/reports/reports/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "yatimku_backend/internals/features/reports/reports/controller"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	g := admin.Group("/reports")
	g.Get("/orphans", ctl.OrphansSummary)
	g.Get("/sponsorships", ctl.SponsorshipsSummary)
	g.Get("/visits", ctl.VisitsSummary)
	g.Get("/donations", ctl.DonationsSummary)
}
