package booking_flow

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_flow: invalid input data")

	// ErrExperienceNotFound возвращается, когда выбранное впечатление не найдено
	ErrExperienceNotFound = errors.New("booking_flow: experience not found")

	// ErrSlotNotOffered возвращается, когда слот не входит в доступные слоты впечатления
	ErrSlotNotOffered = errors.New("booking_flow: slot is not offered for this experience")

	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	ErrCatalogUnavailable = errors.New("booking_flow: catalog unavailable")

	// ErrSubmitInProgress возвращается при повторной отправке до завершения предыдущей
	ErrSubmitInProgress = errors.New("booking_flow: submission already in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_flow: internal error")
)
