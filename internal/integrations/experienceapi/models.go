package experienceapi

import "github.com/m04kA/SMC-StorefrontService/internal/domain"

// Experience модель впечатления из API
type Experience struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Duration       float64  `json:"duration"`
	ImageURL       string   `json:"imageUrl"`
	Location       *string  `json:"location,omitempty"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToDomain конвертирует модель API в доменную
func (e *Experience) ToDomain() domain.Experience {
	exp := domain.Experience{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Price:          e.Price,
		Duration:       e.Duration,
		ImageURL:       e.ImageURL,
		AvailableSlots: append([]string(nil), e.AvailableSlots...),
	}
	if e.Location != nil {
		exp.Location = *e.Location
	}
	return exp
}

// BookingRequest тело запроса POST /bookings
type BookingRequest struct {
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	UserPhone    string  `json:"userPhone"`
	ExperienceID string  `json:"experienceId"`
	Slot         string  `json:"slot"`
	PromoCode    *string `json:"promoCode,omitempty"`
}

// Booking созданное бронирование из API
type Booking struct {
	ID           string  `json:"_id"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	UserPhone    string  `json:"userPhone"`
	ExperienceID string  `json:"experienceId"`
	Slot         string  `json:"slot"`
	PromoCode    *string `json:"promoCode,omitempty"`
	TotalPrice   float64 `json:"totalPrice"`
	CreatedAt    string  `json:"createdAt"`
}

// PromoRequest тело запроса POST /promo/validate
type PromoRequest struct {
	Code string `json:"code"`
}

// PromoValidation результат проверки промокода
type PromoValidation struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}

// ToDomain конвертирует модель API в доменную
func (p *PromoValidation) ToDomain() domain.PromoOutcome {
	return domain.PromoOutcome{
		Valid:    p.Valid,
		Discount: p.Discount,
		Message:  p.Message,
	}
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Message string `json:"message"`
}
