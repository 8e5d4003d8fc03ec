// file: internals/features/donations/donations/controller/donation_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/donations/donations/dto"
	"yatimku_backend/internals/features/donations/donations/model"
	"yatimku_backend/internals/features/donations/donations/service"
)

type DonationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDonationController(db *gorm.DB, v *validator.Validate) *DonationController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &DonationController{DB: db, Validate: v}
}

// POST /api/donations — publik, hasilkan Snap token.
func (ctl *DonationController) Create(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	donation := model.DonationModel{
		DonationName:     req.Name,
		DonationEmail:    req.Email,
		DonationAmount:   req.Amount,
		DonationStatus:   "pending",
		DonationOrderID:  fmt.Sprintf("DONATE-%d-%s", time.Now().Unix(), uuid.New().String()[:8]),
		DonationOrphanID: req.OrphanID,
	}
	if req.Message != nil {
		donation.DonationMessage = *req.Message
	}

	token, err := service.GenerateSnapToken(donation)
	if err != nil {
		log.Println("[ERROR] Gagal generate Snap token:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	donation.DonationPaymentToken = token

	if err := ctl.DB.Create(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal simpan donasi:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat", dto.CreateDonationResponse{
		DonationOrderID: donation.DonationOrderID,
		PaymentToken:    token,
		Status:          donation.DonationStatus,
	})
}

// POST /api/donations/notification — webhook Midtrans (tanpa auth).
func (ctl *DonationController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandleDonationStatusWebhook(ctl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}

// GET /api/a/donations?status=&orphan_id=
func (ctl *DonationController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.DonationModel{})
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("donation_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("orphan_id")); v != "" {
		q = q.Where("donation_orphan_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count donations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	var rows []model.DonationModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list donations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, p, len(rows)))
}

// GET /api/a/donations/:order_id
func (ctl *DonationController) GetByOrderID(c *fiber.Ctx) error {
	var row model.DonationModel
	if err := ctl.DB.First(&row, "donation_order_id = ?", c.Params("order_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Donasi tidak ditemukan")
		}
		log.Printf("[ERROR] get donation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}
	return helper.JsonOK(c, "", row)
}
