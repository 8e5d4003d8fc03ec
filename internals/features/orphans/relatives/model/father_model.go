// file: internals/features/orphans/relatives/model/father_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// FatherModel merepresentasikan tabel fathers
type FatherModel struct {
	FatherID  uint      `json:"father_id" gorm:"primaryKey;autoIncrement;column:father_id"`
	FatherUID uuid.UUID `json:"father_uid" gorm:"type:uuid;not null;uniqueIndex;column:father_uid"`

	FatherFullName     string     `json:"father_full_name" gorm:"type:text;not null;column:father_full_name"`
	FatherDateOfDeath  *time.Time `json:"father_date_of_death,omitempty" gorm:"type:date;column:father_date_of_death"`
	FatherCauseOfDeath *string    `json:"father_cause_of_death,omitempty" gorm:"type:text;column:father_cause_of_death"`
	FatherOccupation   *string    `json:"father_occupation,omitempty" gorm:"type:varchar(120);column:father_occupation"`
	FatherNotes        *string    `json:"father_notes,omitempty" gorm:"type:text;column:father_notes"`

	FatherCreatedAt time.Time `json:"father_created_at" gorm:"column:father_created_at;autoCreateTime"`
	FatherUpdatedAt time.Time `json:"father_updated_at" gorm:"column:father_updated_at;autoUpdateTime"`
}

func (FatherModel) TableName() string { return "fathers" }
