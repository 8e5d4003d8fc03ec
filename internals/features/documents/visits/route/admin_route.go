// file: internals/features/documents/visits/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	visitCtl "yatimku_backend/internals/features/documents/visits/controller"
)

func FieldVisitAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := visitCtl.NewFieldVisitController(db, nil)

	g := admin.Group("/field-visits")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
