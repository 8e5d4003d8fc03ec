// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"
)

// TokenBlacklistModel — token yang sudah di-logout, ditolak auth middleware.
type TokenBlacklistModel struct {
	TokenBlacklistID        uint      `json:"token_blacklist_id" gorm:"column:token_blacklist_id;primaryKey;autoIncrement"`
	TokenBlacklistToken     string    `json:"token_blacklist_token" gorm:"column:token_blacklist_token;type:text;not null;unique"`
	TokenBlacklistExpiredAt time.Time `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;autoCreateTime"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
