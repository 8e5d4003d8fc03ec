// file: internals/features/organizations/legacy/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	legacyCtl "yatimku_backend/internals/features/organizations/legacy/controller"
)

// LegacyOrgAdminRoutes — skema lama: read-only + konversi marketing → sponsor.
func LegacyOrgAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := legacyCtl.NewLegacyOrgController(db, nil)

	g := admin.Group("/legacy")
	g.Get("/sponsor-organizations", ctl.GetAllSponsorOrgs)
	g.Get("/marketing-organizations", ctl.GetAllMarketingOrgs)
	g.Get("/marketing-organizations/:id", ctl.GetMarketingOrgByID)
	g.Post("/marketing-organizations/:id/convert", ctl.Convert)
}
