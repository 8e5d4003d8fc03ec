// file: internals/features/organizations/legacy/model/legacy_org_model.go
package model

import "time"

/*
Skema legacy: dua tabel terpisah sponsor_organizations / marketing_organizations.
Model terpadu (package organizations) yang canonical untuk data baru; tabel di
sini dipertahankan read-only untuk data historis + workflow konversi satu arah
marketing → sponsor.
*/

// SponsorOrganizationModel merepresentasikan tabel sponsor_organizations (legacy)
type SponsorOrganizationModel struct {
	SponsorOrgID uint `json:"sponsor_org_id" gorm:"primaryKey;autoIncrement;column:sponsor_org_id"`

	SponsorOrgName          string  `json:"sponsor_org_name" gorm:"type:text;not null;column:sponsor_org_name"`
	SponsorOrgEmail         *string `json:"sponsor_org_email,omitempty" gorm:"type:varchar(200);column:sponsor_org_email"`
	SponsorOrgPhone         *string `json:"sponsor_org_phone,omitempty" gorm:"type:varchar(30);column:sponsor_org_phone"`
	SponsorOrgContactPerson *string `json:"sponsor_org_contact_person,omitempty" gorm:"type:varchar(200);column:sponsor_org_contact_person"`

	SponsorOrgSponsorshipType string  `json:"sponsor_org_sponsorship_type" gorm:"type:varchar(30);not null;default:cash;column:sponsor_org_sponsorship_type"`
	SponsorOrgNotes           *string `json:"sponsor_org_notes,omitempty" gorm:"type:text;column:sponsor_org_notes"`

	SponsorOrgCreatedAt time.Time `json:"sponsor_org_created_at" gorm:"column:sponsor_org_created_at;autoCreateTime"`
	SponsorOrgUpdatedAt time.Time `json:"sponsor_org_updated_at" gorm:"column:sponsor_org_updated_at;autoUpdateTime"`
}

func (SponsorOrganizationModel) TableName() string { return "sponsor_organizations" }

// MarketingOrganizationModel merepresentasikan tabel marketing_organizations (legacy)
type MarketingOrganizationModel struct {
	MarketingOrgID uint `json:"marketing_org_id" gorm:"primaryKey;autoIncrement;column:marketing_org_id"`

	MarketingOrgName          string  `json:"marketing_org_name" gorm:"type:text;not null;column:marketing_org_name"`
	MarketingOrgEmail         *string `json:"marketing_org_email,omitempty" gorm:"type:varchar(200);column:marketing_org_email"`
	MarketingOrgPhone         *string `json:"marketing_org_phone,omitempty" gorm:"type:varchar(30);column:marketing_org_phone"`
	MarketingOrgContactPerson *string `json:"marketing_org_contact_person,omitempty" gorm:"type:varchar(200);column:marketing_org_contact_person"`

	// back-reference diisi saat konversi berhasil
	MarketingOrgConvertedToSponsor bool  `json:"marketing_org_converted_to_sponsor" gorm:"not null;default:false;column:marketing_org_converted_to_sponsor"`
	MarketingOrgSponsorOrgID       *uint `json:"marketing_org_sponsor_org_id,omitempty" gorm:"column:marketing_org_sponsor_org_id"`

	MarketingOrgCreatedAt time.Time `json:"marketing_org_created_at" gorm:"column:marketing_org_created_at;autoCreateTime"`
	MarketingOrgUpdatedAt time.Time `json:"marketing_org_updated_at" gorm:"column:marketing_org_updated_at;autoUpdateTime"`
}

func (MarketingOrganizationModel) TableName() string { return "marketing_organizations" }

const DefaultSponsorshipType = "cash"
