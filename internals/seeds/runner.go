// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	settingSeed "yatimku_backend/internals/seeds/settings"
	userSeed "yatimku_backend/internals/seeds/users"
)

// RunAllSeeds dipanggil manual saat setup environment baru (SEED=true).
func RunAllSeeds(db *gorm.DB) {
	userSeed.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	settingSeed.SeedSettings(db)
}
