// file: internals/features/settings/settings/model/bank_account_model.go
package model

import (
	"time"
)

// BankAccountModel — rekening yayasan yang ditampilkan ke donatur.
type BankAccountModel struct {
	BankAccountID uint `json:"bank_account_id" gorm:"column:bank_account_id;primaryKey;autoIncrement"`

	BankAccountBankName   string `json:"bank_account_bank_name" gorm:"column:bank_account_bank_name;type:varchar(100);not null"`
	BankAccountNumber     string `json:"bank_account_number" gorm:"column:bank_account_number;type:varchar(50);not null"`
	BankAccountHolderName string `json:"bank_account_holder_name" gorm:"column:bank_account_holder_name;type:varchar(150);not null"`
	BankAccountIsActive   bool   `json:"bank_account_is_active" gorm:"column:bank_account_is_active;not null;default:true"`

	BankAccountCreatedAt time.Time `json:"bank_account_created_at" gorm:"column:bank_account_created_at;autoCreateTime"`
	BankAccountUpdatedAt time.Time `json:"bank_account_updated_at" gorm:"column:bank_account_updated_at;autoUpdateTime"`
}

func (BankAccountModel) TableName() string { return "bank_accounts" }
