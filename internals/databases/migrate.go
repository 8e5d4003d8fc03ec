package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// columnMigrations: daftar kolom yang ditambahkan setelah schema awal rilis.
// Format: tabel → definisi kolom lengkap (nama + tipe + default).
var columnMigrations = map[string][]string{
	"orphans": {
		"orphan_memorizes_quran BOOLEAN NOT NULL DEFAULT FALSE",
		"orphan_quran_parts_memorized INT NOT NULL DEFAULT 0",
		"orphan_mother_is_custodian BOOLEAN NOT NULL DEFAULT TRUE",
	},
	"mothers": {
		"mother_is_custodian BOOLEAN NOT NULL DEFAULT TRUE",
	},
	"marketing_organizations": {
		"marketing_org_converted_to_sponsor BOOLEAN NOT NULL DEFAULT FALSE",
		"marketing_org_sponsor_org_id BIGINT",
	},
	"settings": {
		"setting_default_organization_id BIGINT",
	},
}

// EnsureColumn menambahkan kolom bila belum ada (idempotent).
// Error duplicate column (SQLSTATE 42701) di-suppress karena memang expected
// saat migrasi dijalankan ulang; error lain dilog lalu lanjut ke kolom berikutnya.
func EnsureColumn(db *gorm.DB, table, columnDef string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, columnDef)
	if err := db.Exec(stmt).Error; err != nil {
		if isDuplicateColumn(err) {
			return nil
		}
		return err
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42701" {
		return true
	}
	// fallback: driver lain / pesan mentah
	return strings.Contains(strings.ToLower(err.Error()), "already exists") ||
		strings.Contains(err.Error(), "SQLSTATE 42701")
}

// RunColumnMigrations menjalankan seluruh daftar kolom di atas.
func RunColumnMigrations() {
	for table, cols := range columnMigrations {
		for _, col := range cols {
			if err := EnsureColumn(DB, table, col); err != nil {
				log.Printf("[WARN] migrasi kolom %s.%s gagal: %v", table, col, err)
			}
		}
	}
}
