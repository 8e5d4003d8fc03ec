// file: internals/features/donations/donations/route/donation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donationCtl "yatimku_backend/internals/features/donations/donations/controller"
)

// DonationPublicRoutes — dipanggil donatur & Midtrans, tanpa auth.
func DonationPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db, nil)

	g := api.Group("/donations")
	g.Post("/", ctl.Create)
	g.Post("/notification", ctl.Notification)
}

// DonationAdminRoutes — monitoring donasi di backoffice.
func DonationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := donationCtl.NewDonationController(db, nil)

	g := admin.Group("/donations")
	g.Get("/", ctl.GetAll)
	g.Get("/:order_id", ctl.GetByOrderID)
}
