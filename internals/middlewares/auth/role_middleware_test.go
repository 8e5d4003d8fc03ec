// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/x",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("user_role", role)
			}
			return c.Next()
		},
		OnlyRoles("khusus admin", allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyRoles_AllowsListedRole(t *testing.T) {
	app := newRoleApp("admin", "admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRoles_RejectsOtherRole(t *testing.T) {
	app := newRoleApp("viewer", "admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRoles_MissingRoleIsUnauthorized(t *testing.T) {
	app := newRoleApp("", "admin")

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Daftar role kosong = tidak ada pembatasan.
func TestOnlyRoles_EmptyListAllowsEveryone(t *testing.T) {
	app := newRoleApp("viewer")

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
