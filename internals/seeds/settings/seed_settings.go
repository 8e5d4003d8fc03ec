// file: internals/seeds/settings/seed_settings.go
package settings

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"yatimku_backend/internals/features/settings/settings/model"
)

// SeedSettings memastikan baris settings tunggal (PK 1) tersedia.
func SeedSettings(db *gorm.DB) {
	row := model.SettingModel{
		SettingID:             model.SettingSentinelID,
		SettingFoundationName: "Yayasan Yatimku",
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		log.Printf("❌ Gagal seed settings: %v", err)
		return
	}
	log.Println("✅ Settings siap.")
}
