package checkout

// Имена полей формы для FieldErrors
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPromoCode = "promoCode"
)

// Сообщения для пользователя
const (
	MsgNameRequired       = "Name is required"
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgInvalidPhone       = "Please enter a valid phone number (min. 10 digits)"
	MsgPromoCodeRequired  = "Please enter a promo code"
	MsgInvalidPromoCode   = "Invalid promo code"
	MsgPromoCheckFailed   = "Error validating promo code"
	MsgNetworkUnavailable = "Unable to connect to the server. Please check your internet connection."
	MsgBookingFailed      = "Booking failed. Please try again."
)
