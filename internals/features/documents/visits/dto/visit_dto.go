// file: internals/features/documents/visits/dto/visit_dto.go
package dto

type CreateFieldVisitRequest struct {
	OrphanID    uint    `json:"orphan_id" validate:"required,min=1"`
	VisitorName string  `json:"visitor_name" validate:"required,min=2,max=150"`
	Purpose     *string `json:"purpose" validate:"omitempty,max=200"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Summary     *string `json:"summary" validate:"omitempty"`
}

var UpdatableFieldVisitFields = map[string]string{
	"visitor_name": "field_visit_visitor_name",
	"purpose":      "field_visit_purpose",
	"date":         "field_visit_date",
	"summary":      "field_visit_summary",
}
