// file: internals/features/organizations/organizations/model/organization_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel merepresentasikan tabel organizations (model terpadu).
// Flag is_sponsor / is_marketing menggantikan dua tabel legacy;
// tabel legacy masih ada untuk data historis (lihat package legacy).
type OrganizationModel struct {
	OrganizationID  uint      `json:"organization_id" gorm:"primaryKey;autoIncrement;column:organization_id"`
	OrganizationUID uuid.UUID `json:"organization_uid" gorm:"type:uuid;not null;uniqueIndex;column:organization_uid"`

	OrganizationName          string  `json:"organization_name" gorm:"type:text;not null;column:organization_name"`
	OrganizationEmail         *string `json:"organization_email,omitempty" gorm:"type:varchar(200);column:organization_email"`
	OrganizationPhone         *string `json:"organization_phone,omitempty" gorm:"type:varchar(30);column:organization_phone"`
	OrganizationContactPerson *string `json:"organization_contact_person,omitempty" gorm:"type:varchar(200);column:organization_contact_person"`
	OrganizationCountry       *string `json:"organization_country,omitempty" gorm:"type:varchar(60);column:organization_country"`

	OrganizationIsSponsor   bool `json:"organization_is_sponsor" gorm:"not null;default:false;column:organization_is_sponsor"`
	OrganizationIsMarketing bool `json:"organization_is_marketing" gorm:"not null;default:false;column:organization_is_marketing"`

	OrganizationSponsorshipType *string `json:"organization_sponsorship_type,omitempty" gorm:"type:varchar(30);column:organization_sponsorship_type"`
	OrganizationNotes           *string `json:"organization_notes,omitempty" gorm:"type:text;column:organization_notes"`

	OrganizationCreatedAt time.Time `json:"organization_created_at" gorm:"column:organization_created_at;autoCreateTime"`
	OrganizationUpdatedAt time.Time `json:"organization_updated_at" gorm:"column:organization_updated_at;autoUpdateTime"`
}

func (OrganizationModel) TableName() string { return "organizations" }
