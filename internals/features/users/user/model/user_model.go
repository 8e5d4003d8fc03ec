// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel — akun petugas backoffice.
type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`

	UserName     string `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail    string `json:"user_email" gorm:"column:user_email;type:varchar(150);uniqueIndex;not null"`
	UserPassword string `json:"-" gorm:"column:user_password;type:varchar(255);not null"`

	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:staff"`
	UserIsActive bool   `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserGoogleID *string `json:"user_google_id,omitempty" gorm:"column:user_google_id;type:varchar(128);index"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"-" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
