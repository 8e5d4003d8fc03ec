// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yatimku_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON membuat akun petugas awal; email yang sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))

		var existing model.UserModel
		if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", email, err)
			continue
		}

		newUser := model.UserModel{
			UserName:     data.Name,
			UserEmail:    email,
			UserPassword: string(hashed),
			UserRole:     data.Role,
			UserIsActive: true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", email)
		}
	}
}
