package submit_booking

import "github.com/m04kA/SMC-StorefrontService/internal/service/checkout"

// SubmitRequest HTTP request model
// Поля формы можно передать вместе с отправкой, отсутствующие берутся из формы
type SubmitRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PromoCode *string `json:"promoCode,omitempty"`
}

// ToFormPatch конвертирует HTTP запрос в изменения формы
func (r *SubmitRequest) ToFormPatch() checkout.FormPatch {
	return checkout.FormPatch{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		PromoCode: r.PromoCode,
	}
}
