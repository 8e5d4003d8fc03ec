// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yatimku_backend/internals/constants"
	authCtl "yatimku_backend/internals/features/users/auth/controller"
	masterMw "yatimku_backend/internals/middlewares/auth"
)

// AuthPublicRoutes — login tanpa token.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api.Post("/login", ctl.Login)
	api.Post("/login-google", ctl.LoginGoogle)
}

// AuthProtectedRoutes — butuh token valid.
func AuthProtectedRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	g := admin.Group("/auth")
	g.Post("/register",
		masterMw.OnlyRoles(constants.RoleErrorAdmin("manajemen akun"), constants.AdminOnly...),
		ctl.Register)
	g.Post("/logout", ctl.Logout)
	g.Get("/me", ctl.Me)
}
