// file: internals/features/orphans/relatives/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relCtl "yatimku_backend/internals/features/orphans/relatives/controller"
)

// RelativesAdminRoutes — CRUD keluarga anak asuh (ayah/ibu/wali/sibling/tempat tinggal).
func RelativesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := relCtl.NewRelativesController(db, nil)

	fathers := admin.Group("/fathers")
	fathers.Get("/", ctl.GetAllFathers)
	fathers.Get("/:id", ctl.GetFatherByID)
	fathers.Post("/", ctl.CreateFather)
	fathers.Patch("/:id", ctl.UpdateFather)
	fathers.Delete("/:id", ctl.DeleteFather)

	mothers := admin.Group("/mothers")
	mothers.Get("/", ctl.GetAllMothers)
	mothers.Get("/:id", ctl.GetMotherByID)
	mothers.Post("/", ctl.CreateMother)
	mothers.Patch("/:id", ctl.UpdateMother)
	mothers.Delete("/:id", ctl.DeleteMother)

	guardians := admin.Group("/guardians")
	guardians.Get("/", ctl.GetAllGuardians)
	guardians.Get("/:id", ctl.GetGuardianByID)
	guardians.Post("/", ctl.CreateGuardian)
	guardians.Patch("/:id", ctl.UpdateGuardian)
	guardians.Delete("/:id", ctl.DeleteGuardian)

	siblings := admin.Group("/siblings")
	siblings.Get("/", ctl.GetAllSiblings)
	siblings.Get("/:id", ctl.GetSiblingByID)
	siblings.Patch("/:id", ctl.UpdateSibling)
	siblings.Delete("/:id", ctl.DeleteSibling)

	residences := admin.Group("/residences")
	residences.Get("/:id", ctl.GetResidenceByID)
	residences.Patch("/:id", ctl.UpdateResidence)
}
