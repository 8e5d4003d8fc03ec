// file: internals/features/orphans/orphans/model/orphan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// OrphanModel merepresentasikan tabel orphans
type OrphanModel struct {
	OrphanID  uint      `json:"orphan_id" gorm:"primaryKey;autoIncrement;column:orphan_id"`
	OrphanUID uuid.UUID `json:"orphan_uid" gorm:"type:uuid;not null;uniqueIndex;column:orphan_uid"`

	// kode eksternal yang diberikan manual oleh yayasan (bukan PK)
	OrphanCode *string `json:"orphan_code,omitempty" gorm:"type:varchar(50);column:orphan_code"`

	OrphanFullName    string     `json:"orphan_full_name" gorm:"type:text;not null;column:orphan_full_name"`
	OrphanDateOfBirth *time.Time `json:"orphan_date_of_birth,omitempty" gorm:"type:date;column:orphan_date_of_birth"`
	OrphanGender      string     `json:"orphan_gender" gorm:"type:varchar(10);not null;default:male;column:orphan_gender"`
	OrphanNationality *string    `json:"orphan_nationality,omitempty" gorm:"type:varchar(60);column:orphan_nationality"`

	// kesehatan & pendidikan
	OrphanHealthCondition string  `json:"orphan_health_condition" gorm:"type:varchar(30);not null;default:healthy;column:orphan_health_condition"`
	OrphanHealthNotes     *string `json:"orphan_health_notes,omitempty" gorm:"type:text;column:orphan_health_notes"`
	OrphanIsStudying      bool    `json:"orphan_is_studying" gorm:"not null;default:true;column:orphan_is_studying"`
	OrphanSchoolName      *string `json:"orphan_school_name,omitempty" gorm:"type:text;column:orphan_school_name"`
	OrphanGradeLevel      *string `json:"orphan_grade_level,omitempty" gorm:"type:varchar(30);column:orphan_grade_level"`

	// hafalan quran
	OrphanMemorizesQuran      bool `json:"orphan_memorizes_quran" gorm:"not null;default:false;column:orphan_memorizes_quran"`
	OrphanQuranPartsMemorized int  `json:"orphan_quran_parts_memorized" gorm:"not null;default:0;column:orphan_quran_parts_memorized"`

	OrphanSiblingsCount int `json:"orphan_siblings_count" gorm:"not null;default:0;column:orphan_siblings_count"`

	// relasi opsional, diisi workflow pembuatan agregat
	OrphanFatherID    *uint `json:"orphan_father_id,omitempty" gorm:"column:orphan_father_id"`
	OrphanMotherID    *uint `json:"orphan_mother_id,omitempty" gorm:"column:orphan_mother_id"`
	OrphanGuardianID  *uint `json:"orphan_guardian_id,omitempty" gorm:"column:orphan_guardian_id"`
	OrphanResidenceID *uint `json:"orphan_residence_id,omitempty" gorm:"column:orphan_residence_id"`

	OrphanMotherIsCustodian bool `json:"orphan_mother_is_custodian" gorm:"not null;default:true;column:orphan_mother_is_custodian"`

	OrphanNotes *string `json:"orphan_notes,omitempty" gorm:"type:text;column:orphan_notes"`

	OrphanCreatedAt time.Time `json:"orphan_created_at" gorm:"column:orphan_created_at;autoCreateTime"`
	OrphanUpdatedAt time.Time `json:"orphan_updated_at" gorm:"column:orphan_updated_at;autoUpdateTime"`
}

func (OrphanModel) TableName() string { return "orphans" }

// Sentinel default yang disimpan saat field tidak dikirim client.
const (
	DefaultHealthCondition    = "healthy"
	DefaultResidenceCountry   = "Indonesia"
	DefaultResidenceCondition = "average"
)
