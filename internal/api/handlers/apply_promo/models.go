package apply_promo

import (
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

// ApplyPromoRequest HTTP request model
// Без promoCode проверяется код, уже введенный в форму
type ApplyPromoRequest struct {
	PromoCode *string `json:"promoCode,omitempty"`
}

// ApplyPromoResponse HTTP response model
// applied=false - результат устарел или код пустой, состояние формы актуально
type ApplyPromoResponse struct {
	*checkoutView.CheckoutResponse
	Applied bool `json:"applied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(result *bookingFlow.PromoResult) *ApplyPromoResponse {
	return &ApplyPromoResponse{
		CheckoutResponse: checkoutView.FromView(result.View),
		Applied:          result.Applied,
	}
}
