package checkout

import "errors"

var (
	// ErrPromoCodeRequired возвращается при попытке применить пустой промокод
	ErrPromoCodeRequired = errors.New("checkout: promo code is required")

	// ErrInvalidFields возвращается, когда обязательные поля формы не прошли проверку
	ErrInvalidFields = errors.New("checkout: invalid form fields")

	// ErrSubmitInProgress возвращается при повторной отправке до завершения предыдущей
	ErrSubmitInProgress = errors.New("checkout: submission already in progress")

	// ErrAlreadySubmitted возвращается, если бронирование по этой форме уже создано
	ErrAlreadySubmitted = errors.New("checkout: booking already submitted")
)
