// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yatimku_backend/internals/constants"
	userCtl "yatimku_backend/internals/features/users/user/controller"
	masterMw "yatimku_backend/internals/middlewares/auth"
)

// UserAdminRoutes — manajemen akun, khusus admin.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	g := admin.Group("/users",
		masterMw.OnlyRoles(constants.RoleErrorAdmin("manajemen akun"), constants.AdminOnly...))
	g.Get("/", ctl.GetAll)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
