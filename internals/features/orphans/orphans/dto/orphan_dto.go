// file: internals/features/orphans/orphans/dto/orphan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

//
// ========== CREATE (payload komposit workflow agregat) ==========
//

// Objek nested boleh dikirim kosong; yang menentukan dibuat/tidaknya row
// adalah full_name terisi (presence-of-name, bukan presence-of-object).
type FatherData struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=200"`
	DateOfDeath  *string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
	CauseOfDeath *string `json:"cause_of_death" validate:"omitempty"`
	Occupation   *string `json:"occupation" validate:"omitempty,max=120"`
	Notes        *string `json:"notes" validate:"omitempty"`
}

type MotherData struct {
	FullName        *string `json:"full_name" validate:"omitempty,max=200"`
	MaritalStatus   *string `json:"marital_status" validate:"omitempty,oneof=widow remarried divorced deceased"`
	IsCustodian     *bool   `json:"is_custodian" validate:"omitempty"`
	HealthCondition *string `json:"health_condition" validate:"omitempty,max=30"`
	Occupation      *string `json:"occupation" validate:"omitempty,max=120"`
	Phone           *string `json:"phone" validate:"omitempty,max=30"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

type GuardianData struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=200"`
	Relationship *string `json:"relationship" validate:"omitempty,max=60"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Occupation   *string `json:"occupation" validate:"omitempty,max=120"`
	Notes        *string `json:"notes" validate:"omitempty"`
}

type ResidenceData struct {
	Country   *string `json:"country" validate:"omitempty,max=60"`
	City      *string `json:"city" validate:"omitempty,max=120"`
	District  *string `json:"district" validate:"omitempty,max=120"`
	Address   *string `json:"address" validate:"omitempty"`
	Condition *string `json:"condition" validate:"omitempty,oneof=good average poor"`
	Ownership *string `json:"ownership" validate:"omitempty,max=30"`
}

type SiblingData struct {
	FullName    string  `json:"full_name" validate:"required,max=200"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	IsStudying  *bool   `json:"is_studying" validate:"omitempty"`
	Notes       *string `json:"notes" validate:"omitempty"`
}

type CreateOrphanRequest struct {
	// data anak utama
	FullName    string  `json:"full_name" validate:"required,max=200"`
	OrphanCode  *string `json:"orphan_code" validate:"omitempty,max=50"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female"`
	Nationality *string `json:"nationality" validate:"omitempty,max=60"`

	HealthCondition *string `json:"health_condition" validate:"omitempty,oneof=healthy sick disabled chronic"`
	HealthNotes     *string `json:"health_notes" validate:"omitempty"`
	IsStudying      *bool   `json:"is_studying" validate:"omitempty"`
	SchoolName      *string `json:"school_name" validate:"omitempty"`
	GradeLevel      *string `json:"grade_level" validate:"omitempty,max=30"`

	MemorizesQuran      *bool `json:"memorizes_quran" validate:"omitempty"`
	QuranPartsMemorized *int  `json:"quran_parts_memorized" validate:"omitempty,min=0,max=30"`
	SiblingsCount       *int  `json:"siblings_count" validate:"omitempty,min=0"`

	Notes *string `json:"notes" validate:"omitempty"`

	// relasi opsional (dibuat duluan supaya id-nya bisa dirujuk row anak)
	FatherData    *FatherData    `json:"father_data" validate:"omitempty"`
	MotherData    *MotherData    `json:"mother_data" validate:"omitempty"`
	GuardianData  *GuardianData  `json:"guardian_data" validate:"omitempty"`
	ResidenceData *ResidenceData `json:"residence_data" validate:"omitempty"`

	// default true kalau tidak dikirim
	MotherIsCustodian *bool `json:"mother_is_custodian" validate:"omitempty"`

	Siblings []SiblingData `json:"siblings" validate:"omitempty,dive"`
}

// MotherCustodian: default true kecuali eksplisit false.
func (r *CreateOrphanRequest) MotherCustodian() bool {
	return r.MotherIsCustodian == nil || *r.MotherIsCustodian
}

//
// ========== RESPONSES ==========
//

type CreateOrphanResponse struct {
	OrphanID      uint      `json:"orphan_id"`
	OrphanUID     uuid.UUID `json:"orphan_uid"`
	SiblingsAdded int       `json:"siblings_added"`
}

// OrphanDetailResponse: satu anak + nama relasi hasil join + daftar sibling.
type OrphanDetailResponse struct {
	OrphanID   uint      `json:"orphan_id" gorm:"column:orphan_id"`
	OrphanUID  uuid.UUID `json:"orphan_uid" gorm:"column:orphan_uid"`
	OrphanCode *string   `json:"orphan_code" gorm:"column:orphan_code"`

	FullName    string     `json:"full_name" gorm:"column:orphan_full_name"`
	DateOfBirth *time.Time `json:"date_of_birth" gorm:"column:orphan_date_of_birth"`
	Gender      string     `json:"gender" gorm:"column:orphan_gender"`
	Nationality *string    `json:"nationality" gorm:"column:orphan_nationality"`

	HealthCondition     string `json:"health_condition" gorm:"column:orphan_health_condition"`
	IsStudying          bool   `json:"is_studying" gorm:"column:orphan_is_studying"`
	MemorizesQuran      bool   `json:"memorizes_quran" gorm:"column:orphan_memorizes_quran"`
	QuranPartsMemorized int    `json:"quran_parts_memorized" gorm:"column:orphan_quran_parts_memorized"`

	MotherIsCustodian bool `json:"mother_is_custodian" gorm:"column:orphan_mother_is_custodian"`

	FatherID     *uint   `json:"father_id" gorm:"column:orphan_father_id"`
	FatherName   *string `json:"father_name" gorm:"column:father_name"`
	MotherID     *uint   `json:"mother_id" gorm:"column:orphan_mother_id"`
	MotherName   *string `json:"mother_name" gorm:"column:mother_name"`
	GuardianID   *uint   `json:"guardian_id" gorm:"column:orphan_guardian_id"`
	GuardianName *string `json:"guardian_name" gorm:"column:guardian_name"`
	ResidenceID  *uint   `json:"residence_id" gorm:"column:orphan_residence_id"`

	Siblings []SiblingItem `json:"siblings" gorm:"-"`
}

type SiblingItem struct {
	SiblingID   uint       `json:"sibling_id" gorm:"column:sibling_id"`
	SiblingUID  uuid.UUID  `json:"sibling_uid" gorm:"column:sibling_uid"`
	FullName    string     `json:"full_name" gorm:"column:sibling_full_name"`
	DateOfBirth *time.Time `json:"date_of_birth" gorm:"column:sibling_date_of_birth"`
	Gender      string     `json:"gender" gorm:"column:sibling_gender"`
	IsStudying  bool       `json:"is_studying" gorm:"column:sibling_is_studying"`
}

//
// ========== UPDATE (partial, allow-list) ==========
//

// UpdatableOrphanFields memetakan key body → kolom DB.
// SET clause dibangun HANYA dari irisan key body dengan map ini,
// jangan pernah langsung dari key kiriman client.
var UpdatableOrphanFields = map[string]string{
	"orphan_code":           "orphan_code",
	"full_name":             "orphan_full_name",
	"date_of_birth":         "orphan_date_of_birth",
	"gender":                "orphan_gender",
	"nationality":           "orphan_nationality",
	"health_condition":      "orphan_health_condition",
	"health_notes":          "orphan_health_notes",
	"is_studying":           "orphan_is_studying",
	"school_name":           "orphan_school_name",
	"grade_level":           "orphan_grade_level",
	"memorizes_quran":       "orphan_memorizes_quran",
	"quran_parts_memorized": "orphan_quran_parts_memorized",
	"siblings_count":        "orphan_siblings_count",
	"mother_is_custodian":   "orphan_mother_is_custodian",
	"notes":                 "orphan_notes",
}

// ParseDate menerima "YYYY-MM-DD" (sudah lolos validasi datetime).
func ParseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
