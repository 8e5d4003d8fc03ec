// file: internals/features/orphans/relatives/model/mother_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MotherModel merepresentasikan tabel mothers
type MotherModel struct {
	MotherID  uint      `json:"mother_id" gorm:"primaryKey;autoIncrement;column:mother_id"`
	MotherUID uuid.UUID `json:"mother_uid" gorm:"type:uuid;not null;uniqueIndex;column:mother_uid"`

	MotherFullName string `json:"mother_full_name" gorm:"type:text;not null;column:mother_full_name"`

	// default "widow" saat dibuat lewat workflow agregat
	MotherMaritalStatus   string  `json:"mother_marital_status" gorm:"type:varchar(30);not null;default:widow;column:mother_marital_status"`
	MotherIsCustodian     bool    `json:"mother_is_custodian" gorm:"not null;default:true;column:mother_is_custodian"`
	MotherHealthCondition *string `json:"mother_health_condition,omitempty" gorm:"type:varchar(30);column:mother_health_condition"`
	MotherOccupation      *string `json:"mother_occupation,omitempty" gorm:"type:varchar(120);column:mother_occupation"`
	MotherPhone           *string `json:"mother_phone,omitempty" gorm:"type:varchar(30);column:mother_phone"`
	MotherNotes           *string `json:"mother_notes,omitempty" gorm:"type:text;column:mother_notes"`

	MotherCreatedAt time.Time `json:"mother_created_at" gorm:"column:mother_created_at;autoCreateTime"`
	MotherUpdatedAt time.Time `json:"mother_updated_at" gorm:"column:mother_updated_at;autoUpdateTime"`
}

func (MotherModel) TableName() string { return "mothers" }

const DefaultMaritalStatus = "widow"
