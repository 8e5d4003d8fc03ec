// file: internals/features/sponsorships/sponsorships/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spCtl "yatimku_backend/internals/features/sponsorships/sponsorships/controller"
)

// SponsorshipAdminRoutes — sponsorship + marketing record.
func SponsorshipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := spCtl.NewSponsorshipController(db, nil)

	sp := admin.Group("/sponsorships")
	sp.Post("/", ctl.Create)
	sp.Get("/", ctl.GetAll)
	sp.Get("/:id", ctl.GetByID)
	sp.Patch("/:id", ctl.Update)
	sp.Delete("/:id", ctl.Delete)

	mr := admin.Group("/marketing-records")
	mr.Post("/", ctl.CreateMarketingRecord)
	mr.Get("/", ctl.GetAllMarketingRecords)
	mr.Patch("/:id", ctl.UpdateMarketingRecord)
	mr.Delete("/:id", ctl.DeleteMarketingRecord)
}
