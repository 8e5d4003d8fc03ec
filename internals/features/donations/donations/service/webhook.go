// file: internals/features/donations/donations/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	donationModel "yatimku_backend/internals/features/donations/donations/model"
)

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)

	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	log.Println("[INFO] Webhook order_id:", orderID, "status:", status)

	var donation donationModel.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donation.DonationStatus = "paid"
		donation.DonationPaidAt = &now
		if method, ok := body["payment_type"].(string); ok {
			donation.DonationPaymentMethod = method
		}
	case "expire":
		donation.DonationStatus = "expired"
	case "cancel":
		donation.DonationStatus = "canceled"
	default:
		log.Println("[INFO] Status tidak diproses:", status)
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status donasi:", err)
		return err
	}

	return nil
}
