// file: internals/features/settings/settings/model/setting_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// SettingModel — konfigurasi yayasan, satu baris saja (PK selalu 1).
type SettingModel struct {
	SettingID uint `json:"setting_id" gorm:"column:setting_id;primaryKey"`

	SettingFoundationName string  `json:"setting_foundation_name" gorm:"column:setting_foundation_name;type:varchar(200);not null;default:''"`
	SettingAddress        *string `json:"setting_address" gorm:"column:setting_address;type:text"`
	SettingPhone          *string `json:"setting_phone" gorm:"column:setting_phone;type:varchar(30)"`
	SettingEmail          *string `json:"setting_email" gorm:"column:setting_email;type:varchar(150)"`

	// Konfigurasi bebas (logo, sosial media, preferensi laporan) dalam JSONB.
	SettingExtra datatypes.JSON `json:"setting_extra" gorm:"column:setting_extra;type:jsonb"`

	SettingUpdatedAt time.Time `json:"setting_updated_at" gorm:"column:setting_updated_at;autoUpdateTime"`
}

func (SettingModel) TableName() string { return "settings" }

// SettingSentinelID: satu-satunya baris settings.
const SettingSentinelID uint = 1
