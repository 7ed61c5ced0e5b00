package browse_catalog

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCatalogUnavailable возвращается, когда удаленное API недоступно или ответило ошибкой
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
