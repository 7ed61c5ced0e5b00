package checkout_view

import (
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

// SelectionResponse выбранное впечатление и слот
type SelectionResponse struct {
	ExperienceID   string  `json:"experienceId"`
	ExperienceName string  `json:"experienceName"`
	Price          float64 `json:"price"`
	Slot           string  `json:"slot"`
}

// PromoResponse результат проверки промокода
type PromoResponse struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message,omitempty"`
}

// FormResponse поля формы и ошибки
type FormResponse struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	PromoCode   string            `json:"promoCode"`
	Errors      map[string]string `json:"errors"`
	SubmitError string            `json:"submitError,omitempty"`
	Submitting  bool              `json:"submitting"`
}

// CheckoutResponse состояние страницы оформления
type CheckoutResponse struct {
	Selection SelectionResponse `json:"selection"`
	Form      FormResponse      `json:"form"`
	Promo     *PromoResponse    `json:"promo,omitempty"`
	BasePrice float64           `json:"basePrice"`
	Discount  float64           `json:"discount"`
	Total     float64           `json:"total"`
}

// ConfirmationResponse результат бронирования
type ConfirmationResponse struct {
	Confirmation *domain.BookingConfirmation `json:"confirmation"`
	// Discount скидка по промокоду; есть только если промокод был отправлен
	Discount   *float64 `json:"discount,omitempty"`
	RedirectTo string   `json:"redirectTo,omitempty"`
}

func FromConfirmation(c *domain.BookingConfirmation, redirectTo string) *ConfirmationResponse {
	resp := &ConfirmationResponse{Confirmation: c, RedirectTo: redirectTo}
	if c.HasPromoCode() {
		discount := c.Price - c.TotalPrice
		resp.Discount = &discount
	}
	return resp
}

func FromSelection(s domain.PendingSelection) SelectionResponse {
	return SelectionResponse{
		ExperienceID:   s.ExperienceID,
		ExperienceName: s.ExperienceName,
		Price:          s.Price,
		Slot:           s.Slot,
	}
}

// FromView конвертирует состояние страницы оформления в HTTP ответ
func FromView(view *bookingFlow.CheckoutView) *CheckoutResponse {
	resp := &CheckoutResponse{
		Selection: FromSelection(view.Selection),
		Form: FormResponse{
			Name:        view.Form.Contact.Name,
			Email:       view.Form.Contact.Email,
			Phone:       view.Form.Contact.Phone,
			PromoCode:   view.Form.Contact.PromoCode,
			Errors:      map[string]string{},
			SubmitError: view.Form.SubmitError,
			Submitting:  view.Form.Submitting,
		},
		BasePrice: view.BasePrice,
		Discount:  view.Discount,
		Total:     view.Total,
	}
	for field, msg := range view.Form.Errors {
		resp.Form.Errors[field] = msg
	}
	if view.Form.Promo != nil {
		resp.Promo = &PromoResponse{
			Valid:    view.Form.Promo.Valid,
			Discount: view.Form.Promo.Discount,
			Message:  view.Form.Promo.Message,
		}
	}
	return resp
}

// PathFor адрес страницы для состояния сценария
func PathFor(state bookingFlow.State) string {
	switch state {
	case bookingFlow.StateCheckout:
		return domain.CheckoutPath
	case bookingFlow.StateConfirmed:
		return domain.ConfirmationPath
	default:
		return domain.BrowsingPath
	}
}
