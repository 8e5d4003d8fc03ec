// file: internals/features/settings/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yatimku_backend/internals/constants"
	settingCtl "yatimku_backend/internals/features/settings/settings/controller"
	masterMw "yatimku_backend/internals/middlewares/auth"
)

// SettingAdminRoutes — settings & rekening, perubahan khusus admin.
func SettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := settingCtl.NewSettingController(db, nil)

	adminOnly := masterMw.OnlyRoles(constants.RoleErrorAdmin("pengaturan"), constants.AdminOnly...)

	s := admin.Group("/settings")
	s.Get("/", ctl.Get)
	s.Patch("/", adminOnly, ctl.Update)

	b := admin.Group("/bank-accounts")
	b.Get("/", ctl.GetAllBankAccounts)
	b.Post("/", adminOnly, ctl.CreateBankAccount)
	b.Patch("/:id", adminOnly, ctl.UpdateBankAccount)
	b.Delete("/:id", adminOnly, ctl.DeleteBankAccount)
}
