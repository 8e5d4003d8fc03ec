// file: internals/features/organizations/legacy/service/convert_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yatimku_backend/internals/features/organizations/legacy/model"
	sponsorshipModel "yatimku_backend/internals/features/sponsorships/sponsorships/model"
)

type ConvertResult struct {
	SponsorOrgID       uint `json:"sponsor_org_id"`
	SponsorshipsAdded  int  `json:"sponsorships_added"`
	MarketingRecordsOK int  `json:"marketing_records_updated"`
}

// ConvertMarketingOrg mengubah lembaga marketing (legacy) menjadi lembaga
// sponsor, opsional sekalian mengaktifkan sponsorship untuk sebagian anak yang
// sudah dipasarkan. Seluruh urutan jalan dalam SATU transaksi; guard
// "sudah pernah dikonversi" dipasang sebagai conditional UPDATE yang dicek
// lewat RowsAffected, bukan SELECT-lalu-UPDATE terpisah.
func ConvertMarketingOrg(db *gorm.DB, marketingOrgID uint, sponsoredOrphanIDs []uint) (*ConvertResult, error) {
	result := &ConvertResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var mktOrg model.MarketingOrganizationModel
		if err := tx.First(&mktOrg, "marketing_org_id = ?", marketingOrgID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Lembaga marketing tidak ditemukan")
			}
			log.Printf("[ERROR] get marketing org %d: %v", marketingOrgID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data lembaga marketing")
		}
		if mktOrg.MarketingOrgConvertedToSponsor {
			return fiber.NewError(fiber.StatusConflict, "Lembaga ini sudah pernah dikonversi menjadi sponsor")
		}

		// buat row sponsor dengan menyalin identitas lembaga marketing
		note := fmt.Sprintf("Hasil konversi dari lembaga marketing #%d (%s)", mktOrg.MarketingOrgID, mktOrg.MarketingOrgName)
		sponsorOrg := model.SponsorOrganizationModel{
			SponsorOrgName:            mktOrg.MarketingOrgName,
			SponsorOrgEmail:           mktOrg.MarketingOrgEmail,
			SponsorOrgPhone:           mktOrg.MarketingOrgPhone,
			SponsorOrgContactPerson:   mktOrg.MarketingOrgContactPerson,
			SponsorOrgSponsorshipType: model.DefaultSponsorshipType,
			SponsorOrgNotes:           &note,
		}
		if err := tx.Create(&sponsorOrg).Error; err != nil {
			log.Printf("[ERROR] create sponsor org: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat lembaga sponsor")
		}

		// tandai converted secara kondisional; 0 row = keduluan request lain
		res := tx.Model(&model.MarketingOrganizationModel{}).
			Where("marketing_org_id = ? AND NOT marketing_org_converted_to_sponsor", marketingOrgID).
			Updates(map[string]any{
				"marketing_org_converted_to_sponsor": true,
				"marketing_org_sponsor_org_id":       sponsorOrg.SponsorOrgID,
			})
		if res.Error != nil {
			log.Printf("[ERROR] mark converted %d: %v", marketingOrgID, res.Error)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menandai lembaga sebagai terkonversi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusConflict, "Lembaga ini sudah pernah dikonversi menjadi sponsor")
		}

		// promosikan anak-anak terpilih jadi sponsorship aktif
		now := time.Now()
		for _, orphanID := range sponsoredOrphanIDs {
			sp := sponsorshipModel.SponsorshipModel{
				SponsorshipOrphanID:       orphanID,
				SponsorshipOrganizationID: sponsorOrg.SponsorOrgID,
				SponsorshipStatus:         sponsorshipModel.SponsorshipStatusActive,
				SponsorshipStartDate:      &now,
			}
			if err := tx.Create(&sp).Error; err != nil {
				log.Printf("[ERROR] create sponsorship orphan %d: %v", orphanID, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sponsorship")
			}
			result.SponsorshipsAdded++

			upd := tx.Model(&sponsorshipModel.MarketingRecordModel{}).
				Where("marketing_record_orphan_id = ? AND marketing_record_organization_id = ?", orphanID, marketingOrgID).
				Update("marketing_record_status", sponsorshipModel.MarketingRecordStatusConverted)
			if upd.Error != nil {
				log.Printf("[ERROR] update marketing record orphan %d: %v", orphanID, upd.Error)
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status marketing record")
			}
			result.MarketingRecordsOK += int(upd.RowsAffected)
		}

		result.SponsorOrgID = sponsorOrg.SponsorOrgID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
