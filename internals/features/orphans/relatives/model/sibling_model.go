// file: internals/features/orphans/relatives/model/sibling_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SiblingModel merepresentasikan tabel orphan_siblings.
// Row ini selalu mewarisi father/mother/guardian hasil resolve milik anak utama,
// bukan dari payload sibling itu sendiri.
type SiblingModel struct {
	SiblingID  uint      `json:"sibling_id" gorm:"primaryKey;autoIncrement;column:sibling_id"`
	SiblingUID uuid.UUID `json:"sibling_uid" gorm:"type:uuid;not null;uniqueIndex;column:sibling_uid"`

	SiblingOrphanID uint `json:"sibling_orphan_id" gorm:"not null;index;column:sibling_orphan_id"`

	SiblingFullName    string     `json:"sibling_full_name" gorm:"type:text;not null;column:sibling_full_name"`
	SiblingDateOfBirth *time.Time `json:"sibling_date_of_birth,omitempty" gorm:"type:date;column:sibling_date_of_birth"`
	SiblingGender      string     `json:"sibling_gender" gorm:"type:varchar(10);not null;default:male;column:sibling_gender"`
	SiblingIsStudying  bool       `json:"sibling_is_studying" gorm:"not null;default:true;column:sibling_is_studying"`

	SiblingFatherID   *uint `json:"sibling_father_id,omitempty" gorm:"column:sibling_father_id"`
	SiblingMotherID   *uint `json:"sibling_mother_id,omitempty" gorm:"column:sibling_mother_id"`
	SiblingGuardianID *uint `json:"sibling_guardian_id,omitempty" gorm:"column:sibling_guardian_id"`

	SiblingNotes *string `json:"sibling_notes,omitempty" gorm:"type:text;column:sibling_notes"`

	SiblingCreatedAt time.Time `json:"sibling_created_at" gorm:"column:sibling_created_at;autoCreateTime"`
	SiblingUpdatedAt time.Time `json:"sibling_updated_at" gorm:"column:sibling_updated_at;autoUpdateTime"`
}

func (SiblingModel) TableName() string { return "orphan_siblings" }
