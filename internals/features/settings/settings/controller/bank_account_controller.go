// file: internals/features/settings/settings/controller/bank_account_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "yatimku_backend/internals/helpers"

	"yatimku_backend/internals/features/settings/settings/dto"
	"yatimku_backend/internals/features/settings/settings/model"
)

// POST /api/a/bank-accounts
func (ctl *SettingController) CreateBankAccount(c *fiber.Ctx) error {
	var req dto.CreateBankAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	row := model.BankAccountModel{
		BankAccountBankName:   req.BankName,
		BankAccountNumber:     req.Number,
		BankAccountHolderName: req.HolderName,
		BankAccountIsActive:   true,
	}
	if req.IsActive != nil {
		row.BankAccountIsActive = *req.IsActive
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create bank account: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah rekening")
	}

	return helper.JsonCreated(c, "Rekening berhasil ditambahkan", row)
}

// GET /api/a/bank-accounts
func (ctl *SettingController) GetAllBankAccounts(c *fiber.Ctx) error {
	var rows []model.BankAccountModel
	if err := ctl.DB.Order("bank_account_id ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list bank accounts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rekening")
	}
	return helper.JsonOK(c, "", rows)
}

// PATCH /api/a/bank-accounts/:id
func (ctl *SettingController) UpdateBankAccount(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := helper.FilterAllowedFields(raw, dto.UpdatableBankAccountFields)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang bisa diubah")
	}

	res := ctl.DB.Model(&model.BankAccountModel{}).
		Where("bank_account_id = ?", c.Params("id")).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[ERROR] update bank account: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah rekening")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rekening tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Rekening berhasil diubah", fiber.Map{"bank_account_id": c.Params("id")})
}

// DELETE /api/a/bank-accounts/:id
func (ctl *SettingController) DeleteBankAccount(c *fiber.Ctx) error {
	res := ctl.DB.Delete(&model.BankAccountModel{}, "bank_account_id = ?", c.Params("id"))
	if res.Error != nil {
		log.Printf("[ERROR] delete bank account: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rekening")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Rekening tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Rekening berhasil dihapus", fiber.Map{"bank_account_id": c.Params("id")})
}
