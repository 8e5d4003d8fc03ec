// file: internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tidak ada path yang dikecualikan: request tanpa token selalu 401,
// termasuk path webhook (webhook notifikasi hidup di group publik,
// bukan lewat pengecualian di middleware).
func TestAuthMiddleware_NoTokenIsUnauthorizedOnEveryPath(t *testing.T) {
	app := fiber.New()
	app.Use(AuthMiddleware(nil))
	app.Post("/api/donations/notification", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/api/a/orphans", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/donations/notification", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/a/orphans", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
