// file: internals/features/documents/documents/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	docCtl "yatimku_backend/internals/features/documents/documents/controller"
)

func DocumentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := docCtl.NewDocumentController(db, nil)

	g := admin.Group("/documents")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
