// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yatimku_backend/internals/constants"
	masterMw "yatimku_backend/internals/middlewares/auth"

	docRoute "yatimku_backend/internals/features/documents/documents/route"
	visitRoute "yatimku_backend/internals/features/documents/visits/route"
	donationRoute "yatimku_backend/internals/features/donations/donations/route"
	legacyOrgRoute "yatimku_backend/internals/features/organizations/legacy/route"
	orgRoute "yatimku_backend/internals/features/organizations/organizations/route"
	orphanRoute "yatimku_backend/internals/features/orphans/orphans/route"
	relativesRoute "yatimku_backend/internals/features/orphans/relatives/route"
	reportRoute "yatimku_backend/internals/features/reports/reports/route"
	settingRoute "yatimku_backend/internals/features/settings/settings/route"
	sponsorshipRoute "yatimku_backend/internals/features/sponsorships/sponsorships/route"
	authRoute "yatimku_backend/internals/features/users/auth/route"
	userRoute "yatimku_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	api := app.Group("/api")
	authRoute.AuthPublicRoutes(api, db)
	donationRoute.DonationPublicRoutes(api, db)

	// ===================== ADMIN (JWT + role) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		masterMw.AuthMiddleware(db),
		masterMw.OnlyRoles("❌ Akses backoffice hanya untuk petugas.", constants.AllRoles...),
	)

	authRoute.AuthProtectedRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Orphan routes...")
	orphanRoute.OrphanAdminRoutes(admin, db)
	relativesRoute.RelativesAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Organization routes...")
	orgRoute.OrganizationAdminRoutes(admin, db)
	legacyOrgRoute.LegacyOrgAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Sponsorship routes...")
	sponsorshipRoute.SponsorshipAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Document & Visit routes...")
	docRoute.DocumentAdminRoutes(admin, db)
	visitRoute.FieldVisitAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Donation admin routes...")
	donationRoute.DonationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report & Setting routes...")
	reportRoute.ReportAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)
}
