package domain

// BookingConfirmation результат успешного бронирования
// Читается страницей подтверждения ровно один раз и удаляется
type BookingConfirmation struct {
	ExperienceID   string  `json:"experienceId"`
	ExperienceName string  `json:"experienceName"`
	Price          float64 `json:"price"`
	Slot           string  `json:"slot"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	PromoCode      string  `json:"promoCode,omitempty"`
	TotalPrice     float64 `json:"totalPrice"`
	BookingID      string  `json:"bookingId"`
	CreatedAt      string  `json:"createdAt,omitempty"`
}

// HasPromoCode промокод был отправлен вместе с бронированием
func (c *BookingConfirmation) HasPromoCode() bool {
	return c.PromoCode != ""
}
