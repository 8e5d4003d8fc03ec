// file: internals/features/documents/visits/model/visit_model.go
package model

import (
	"time"
)

// FieldVisitModel — catatan kunjungan lapangan petugas ke rumah anak asuh.
type FieldVisitModel struct {
	FieldVisitID uint `json:"field_visit_id" gorm:"column:field_visit_id;primaryKey;autoIncrement"`

	FieldVisitOrphanID    uint    `json:"field_visit_orphan_id" gorm:"column:field_visit_orphan_id;index;not null"`
	FieldVisitVisitorName string  `json:"field_visit_visitor_name" gorm:"column:field_visit_visitor_name;type:varchar(150);not null"`
	FieldVisitPurpose     *string `json:"field_visit_purpose" gorm:"column:field_visit_purpose;type:varchar(200)"`

	FieldVisitDate    time.Time `json:"field_visit_date" gorm:"column:field_visit_date;index;not null"`
	FieldVisitSummary *string   `json:"field_visit_summary" gorm:"column:field_visit_summary;type:text"`

	FieldVisitCreatedAt time.Time `json:"field_visit_created_at" gorm:"column:field_visit_created_at;autoCreateTime"`
	FieldVisitUpdatedAt time.Time `json:"field_visit_updated_at" gorm:"column:field_visit_updated_at;autoUpdateTime"`
}

func (FieldVisitModel) TableName() string { return "field_visits" }
