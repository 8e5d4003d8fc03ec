// file: internals/features/organizations/organizations/dto/organization_dto.go
package dto

type CreateOrganizationRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
	Country       *string `json:"country" validate:"omitempty,max=60"`

	IsSponsor   *bool `json:"is_sponsor" validate:"omitempty"`
	IsMarketing *bool `json:"is_marketing" validate:"omitempty"`

	SponsorshipType *string `json:"sponsorship_type" validate:"omitempty,oneof=cash in_kind education medical"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

var UpdatableOrganizationFields = map[string]string{
	"name":             "organization_name",
	"email":            "organization_email",
	"phone":            "organization_phone",
	"contact_person":   "organization_contact_person",
	"country":          "organization_country",
	"is_sponsor":       "organization_is_sponsor",
	"is_marketing":     "organization_is_marketing",
	"sponsorship_type": "organization_sponsorship_type",
	"notes":            "organization_notes",
}
