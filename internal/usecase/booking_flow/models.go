package booking_flow

import (
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
)

// State страница сценария бронирования
type State string

const (
	StateBrowsing  State = "browsing"
	StateCheckout  State = "checkout"
	StateConfirmed State = "confirmed"
)

// Guard результат проверки при входе на страницу: продолжить или уйти на RedirectTo
type Guard struct {
	Proceed    bool
	RedirectTo State
}

// SelectSlotRequest выбор слота на странице впечатления
type SelectSlotRequest struct {
	SessionID    string
	ExperienceID string
	Slot         string
}

// SelectSlotResponse сохраненный выбор и следующая страница
type SelectSlotResponse struct {
	Selection domain.PendingSelection
	Next      State
}

// CheckoutView состояние страницы оформления
type CheckoutView struct {
	Selection domain.PendingSelection
	Form      checkout.FormState
	BasePrice float64
	Discount  float64
	Total     float64
}

// CheckoutResult результат входа на страницу оформления или изменения формы
type CheckoutResult struct {
	Guard Guard
	View  *CheckoutView
}

// PromoResult результат применения промокода
// Applied=false - ответ устарел (промокод изменили во время проверки) или код пустой
type PromoResult struct {
	Guard   Guard
	View    *CheckoutView
	Applied bool
}

// SubmitResult результат отправки формы
// State=StateCheckout - остаемся на странице с ошибками, StateConfirmed - бронирование создано
type SubmitResult struct {
	Guard        Guard
	State        State
	View         *CheckoutView
	Confirmation *domain.BookingConfirmation
}

// ConfirmationResult результат входа на страницу подтверждения
type ConfirmationResult struct {
	Guard        Guard
	Confirmation *domain.BookingConfirmation
}
