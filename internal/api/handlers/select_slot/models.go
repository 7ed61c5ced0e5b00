package select_slot

import (
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Slot string `json:"slot"` // ISO-8601, один из availableSlots впечатления
}

// SelectSlotResponse HTTP response model
type SelectSlotResponse struct {
	Selection  checkoutView.SelectionResponse `json:"selection"`
	RedirectTo string                         `json:"redirectTo"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotRequest) ToUseCaseRequest(sessionID, experienceID string) *bookingFlow.SelectSlotRequest {
	return &bookingFlow.SelectSlotRequest{
		SessionID:    sessionID,
		ExperienceID: experienceID,
		Slot:         r.Slot,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingFlow.SelectSlotResponse) *SelectSlotResponse {
	return &SelectSlotResponse{
		Selection:  checkoutView.FromSelection(resp.Selection),
		RedirectTo: checkoutView.PathFor(resp.Next),
	}
}
