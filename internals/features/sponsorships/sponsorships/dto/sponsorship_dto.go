// file: internals/features/sponsorships/sponsorships/dto/sponsorship_dto.go
package dto

type CreateSponsorshipRequest struct {
	OrphanID       uint    `json:"orphan_id" validate:"required,min=1"`
	OrganizationID uint    `json:"organization_id" validate:"required,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=active ended pending"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	MonthlyAmount  *int    `json:"monthly_amount" validate:"omitempty,min=0"`
	Notes          *string `json:"notes" validate:"omitempty"`
}

var UpdatableSponsorshipFields = map[string]string{
	"status":         "sponsorship_status",
	"start_date":     "sponsorship_start_date",
	"end_date":       "sponsorship_end_date",
	"monthly_amount": "sponsorship_monthly_amount",
	"notes":          "sponsorship_notes",
}

type CreateMarketingRecordRequest struct {
	OrphanID       uint    `json:"orphan_id" validate:"required,min=1"`
	OrganizationID uint    `json:"organization_id" validate:"required,min=1"`
	Status         *string `json:"status" validate:"omitempty,oneof=marketed converted_to_sponsorship rejected"`
	Date           *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes          *string `json:"notes" validate:"omitempty"`
}

var UpdatableMarketingRecordFields = map[string]string{
	"status": "marketing_record_status",
	"date":   "marketing_record_date",
	"notes":  "marketing_record_notes",
}
