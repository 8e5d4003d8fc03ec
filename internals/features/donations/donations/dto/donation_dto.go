// file: internals/features/donations/donations/dto/donation_dto.go
package dto

type CreateDonationRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"omitempty,email,max=150"`
	Amount   int     `json:"amount" validate:"required,min=10000"`
	Message  *string `json:"message" validate:"omitempty"`
	OrphanID *uint   `json:"orphan_id" validate:"omitempty,min=1"`
}

type CreateDonationResponse struct {
	DonationOrderID string `json:"donation_order_id"`
	PaymentToken    string `json:"payment_token"`
	Status          string `json:"status"`
}
