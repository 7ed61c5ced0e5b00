package experienceapi

import (
	"errors"
	"fmt"
)

var (
	// ErrExperienceNotFound возвращается, когда API ответил 404 на запрос впечатления
	ErrExperienceNotFound = errors.New("experienceapi: experience not found")

	// ErrNetwork возвращается, когда ответ от API не получен (сеть, таймаут, отмена)
	ErrNetwork = errors.New("experienceapi: network error")

	// ErrRejected возвращается, когда API отклонил запрос с сообщением (см. RejectionError)
	ErrRejected = errors.New("experienceapi: request rejected")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("experienceapi: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("experienceapi: internal error")
)

// RejectionError отказ API с сообщением для пользователя
// Сообщение показывается пользователю как есть
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("experienceapi: request rejected with status %d: %s", e.StatusCode, e.Message)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// StatusError неожиданный код ответа без сообщения
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("experienceapi: unexpected status code %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrInvalidResponse
}
