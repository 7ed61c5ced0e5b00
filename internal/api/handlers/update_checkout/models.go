package update_checkout

import "github.com/m04kA/SMC-StorefrontService/internal/service/checkout"

// FormPatchRequest HTTP request model; отсутствующее поле не меняется
type FormPatchRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	PromoCode *string `json:"promoCode,omitempty"`
}

// ToFormPatch конвертирует HTTP запрос в изменения формы
func (r *FormPatchRequest) ToFormPatch() checkout.FormPatch {
	return checkout.FormPatch{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		PromoCode: r.PromoCode,
	}
}
