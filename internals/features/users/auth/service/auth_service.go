// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yatimku_backend/internals/configs"
	"yatimku_backend/internals/constants"

	authModel "yatimku_backend/internals/features/users/auth/model"
	userModel "yatimku_backend/internals/features/users/user/model"
)

const accessTTL = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

// Register membuat akun baru. Role default staff, hanya admin yang bisa
// membuat admin lain (dicek di controller lewat role middleware).
func Register(db *gorm.DB, name, email, password string, role *string) (*userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("[ERROR] cek email: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengamankan password")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(name),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     constants.RoleStaff,
		UserIsActive: true,
	}
	if role != nil && *role != "" {
		user.UserRole = *role
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	return &user, nil
}

// Login memverifikasi kredensial dan menerbitkan access token HS256.
func Login(db *gorm.DB, email, password string) (string, *userModel.UserModel, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !user.UserIsActive {
		return "", nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// LoginGoogle memverifikasi ID token Google lalu login/daftar otomatis.
func LoginGoogle(db *gorm.DB, idToken string) (string, *userModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GetEnv("GOOGLE_CLIENT_ID")}); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	claims, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Gagal membaca klaim Google")
	}

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Klaim email Google kosong")
	}

	var user userModel.UserModel
	err = db.First(&user, "user_email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserName:     claims.Name,
			UserEmail:    email,
			UserPassword: "-",
			UserRole:     constants.RoleViewer,
			UserIsActive: true,
			UserGoogleID: &claims.Sub,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] create user google: %v", err)
			return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		log.Printf("[ERROR] login google lookup: %v", err)
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	default:
		if !user.UserIsActive {
			return "", nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
		}
		if user.UserGoogleID == nil {
			_ = db.Model(&user).Update("user_google_id", claims.Sub).Error
		}
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Logout memasukkan token aktif ke blacklist sampai masa berlakunya habis.
func Logout(db *gorm.DB, tokenString string) error {
	expiredAt := nowUTC().Add(accessTTL)

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     tokenString,
		TokenBlacklistExpiredAt: expiredAt,
	}
	if err := db.Create(&row).Error; err != nil {
		// unique violation berarti token sudah di-blacklist, anggap sukses
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			return nil
		}
		log.Printf("[ERROR] blacklist token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal logout")
	}
	return nil
}

func issueAccessToken(user *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"role":      user.UserRole,
		"full_name": user.UserName,
		"email":     user.UserEmail,
		"iat":       nowUTC().Unix(),
		"exp":       nowUTC().Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}
	return signed, nil
}
