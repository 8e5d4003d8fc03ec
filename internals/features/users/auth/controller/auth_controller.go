// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/users/auth/dto"
	"yatimku_backend/internals/features/users/auth/service"
	userModel "yatimku_backend/internals/features/users/user/model"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &AuthController{DB: db, Validate: v}
}

func toUserInfo(u *userModel.UserModel) dto.UserInfo {
	return dto.UserInfo{
		UserID:   u.UserID.String(),
		Name:     u.UserName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		IsActive: u.UserIsActive,
	}
}

// POST /api/a/auth/register (admin only, lewat role middleware)
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	user, err := service.Register(ctl.DB, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Akun berhasil dibuat", toUserInfo(user))
}

// POST /api/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	token, user, err := service.Login(ctl.DB, req.Email, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        toUserInfo(user),
	})
}

// POST /api/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	token, user, err := service.LoginGoogle(ctl.DB, req.IDToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		User:        toUserInfo(user),
	})
}

// POST /api/a/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString := ""
	if h := strings.TrimSpace(c.Get("Authorization")); h != "" {
		parts := strings.Fields(h)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	if err := service.Logout(ctl.DB, tokenString); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// GET /api/a/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Akun tidak ditemukan")
	}
	return helper.JsonOK(c, "", toUserInfo(&user))
}
