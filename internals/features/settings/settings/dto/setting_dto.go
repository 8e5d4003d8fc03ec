// file: internals/features/settings/settings/dto/setting_dto.go
package dto

var UpdatableSettingFields = map[string]string{
	"foundation_name": "setting_foundation_name",
	"address":         "setting_address",
	"phone":           "setting_phone",
	"email":           "setting_email",
	"extra":           "setting_extra",
}

type CreateBankAccountRequest struct {
	BankName   string `json:"bank_name" validate:"required,min=2,max=100"`
	Number     string `json:"number" validate:"required,min=5,max=50"`
	HolderName string `json:"holder_name" validate:"required,min=2,max=150"`
	IsActive   *bool  `json:"is_active"`
}

var UpdatableBankAccountFields = map[string]string{
	"bank_name":   "bank_account_bank_name",
	"number":      "bank_account_number",
	"holder_name": "bank_account_holder_name",
	"is_active":   "bank_account_is_active",
}
