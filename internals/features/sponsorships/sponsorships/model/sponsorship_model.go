// file: internals/features/sponsorships/sponsorships/model/sponsorship_model.go
package model

import "time"

// Status sponsorship
const (
	SponsorshipStatusActive  = "active"
	SponsorshipStatusEnded   = "ended"
	SponsorshipStatusPending = "pending"
)

// SponsorshipModel merepresentasikan tabel sponsorships:
// relasi pendanaan antara satu anak dan satu lembaga sponsor.
type SponsorshipModel struct {
	SponsorshipID uint `json:"sponsorship_id" gorm:"primaryKey;autoIncrement;column:sponsorship_id"`

	SponsorshipOrphanID       uint `json:"sponsorship_orphan_id" gorm:"not null;index;column:sponsorship_orphan_id"`
	SponsorshipOrganizationID uint `json:"sponsorship_organization_id" gorm:"not null;index;column:sponsorship_organization_id"`

	SponsorshipStatus    string     `json:"sponsorship_status" gorm:"type:varchar(30);not null;default:pending;column:sponsorship_status"`
	SponsorshipStartDate *time.Time `json:"sponsorship_start_date,omitempty" gorm:"type:date;column:sponsorship_start_date"`
	SponsorshipEndDate   *time.Time `json:"sponsorship_end_date,omitempty" gorm:"type:date;column:sponsorship_end_date"`

	SponsorshipMonthlyAmount *int    `json:"sponsorship_monthly_amount,omitempty" gorm:"column:sponsorship_monthly_amount"`
	SponsorshipNotes         *string `json:"sponsorship_notes,omitempty" gorm:"type:text;column:sponsorship_notes"`

	SponsorshipCreatedAt time.Time `json:"sponsorship_created_at" gorm:"column:sponsorship_created_at;autoCreateTime"`
	SponsorshipUpdatedAt time.Time `json:"sponsorship_updated_at" gorm:"column:sponsorship_updated_at;autoUpdateTime"`
}

func (SponsorshipModel) TableName() string { return "sponsorships" }
