// file: internals/features/sponsorships/sponsorships/model/marketing_record_model.go
package model

import "time"

// Status marketing record
const (
	MarketingRecordStatusMarketed  = "marketed"
	MarketingRecordStatusConverted = "converted_to_sponsorship"
	MarketingRecordStatusRejected  = "rejected"
)

// MarketingRecordModel merepresentasikan tabel marketing_records:
// pemasaran satu anak ke satu lembaga calon sponsor (sebelum sponsorship jadi).
type MarketingRecordModel struct {
	MarketingRecordID uint `json:"marketing_record_id" gorm:"primaryKey;autoIncrement;column:marketing_record_id"`

	MarketingRecordOrphanID       uint `json:"marketing_record_orphan_id" gorm:"not null;index;column:marketing_record_orphan_id"`
	MarketingRecordOrganizationID uint `json:"marketing_record_organization_id" gorm:"not null;index;column:marketing_record_organization_id"`

	MarketingRecordStatus string     `json:"marketing_record_status" gorm:"type:varchar(40);not null;default:marketed;column:marketing_record_status"`
	MarketingRecordDate   *time.Time `json:"marketing_record_date,omitempty" gorm:"type:date;column:marketing_record_date"`
	MarketingRecordNotes  *string    `json:"marketing_record_notes,omitempty" gorm:"type:text;column:marketing_record_notes"`

	MarketingRecordCreatedAt time.Time `json:"marketing_record_created_at" gorm:"column:marketing_record_created_at;autoCreateTime"`
	MarketingRecordUpdatedAt time.Time `json:"marketing_record_updated_at" gorm:"column:marketing_record_updated_at;autoUpdateTime"`
}

func (MarketingRecordModel) TableName() string { return "marketing_records" }
