// file: internals/features/orphans/relatives/model/guardian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GuardianModel merepresentasikan tabel guardians.
// Guardian hanya dibuat kalau ibu BUKAN pengasuh (mother_is_custodian = false).
type GuardianModel struct {
	GuardianID  uint      `json:"guardian_id" gorm:"primaryKey;autoIncrement;column:guardian_id"`
	GuardianUID uuid.UUID `json:"guardian_uid" gorm:"type:uuid;not null;uniqueIndex;column:guardian_uid"`

	GuardianFullName     string  `json:"guardian_full_name" gorm:"type:text;not null;column:guardian_full_name"`
	GuardianRelationship *string `json:"guardian_relationship,omitempty" gorm:"type:varchar(60);column:guardian_relationship"`
	GuardianPhone        *string `json:"guardian_phone,omitempty" gorm:"type:varchar(30);column:guardian_phone"`
	GuardianOccupation   *string `json:"guardian_occupation,omitempty" gorm:"type:varchar(120);column:guardian_occupation"`
	GuardianNotes        *string `json:"guardian_notes,omitempty" gorm:"type:text;column:guardian_notes"`

	GuardianCreatedAt time.Time `json:"guardian_created_at" gorm:"column:guardian_created_at;autoCreateTime"`
	GuardianUpdatedAt time.Time `json:"guardian_updated_at" gorm:"column:guardian_updated_at;autoUpdateTime"`
}

func (GuardianModel) TableName() string { return "guardians" }
