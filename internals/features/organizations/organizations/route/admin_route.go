// file: internals/features/organizations/organizations/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orgCtl "yatimku_backend/internals/features/organizations/organizations/controller"
)

// OrganizationAdminRoutes — model terpadu (canonical untuk data baru).
func OrganizationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := orgCtl.NewOrganizationController(db, nil)

	g := admin.Group("/organizations")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
