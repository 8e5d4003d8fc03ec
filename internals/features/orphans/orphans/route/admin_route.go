// file: internals/features/orphans/orphans/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orphanCtl "yatimku_backend/internals/features/orphans/orphans/controller"
)

// OrphanAdminRoutes — CRUD penuh + workflow pembuatan agregat + upload lampiran.
// Mount dari caller:
//
//	admin := app.Group("/api/a", ...)
//	route.OrphanAdminRoutes(admin, db)
func OrphanAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := orphanCtl.NewOrphanController(db, nil) // validator default

	g := admin.Group("/orphans")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
	g.Post("/:id/attachments/:category", ctl.UploadAttachment)
}
