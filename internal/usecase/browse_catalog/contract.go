package browse_catalog

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// ExperienceAPIClient интерфейс клиента удаленного API
type ExperienceAPIClient interface {
	ListExperiences(ctx context.Context) ([]domain.Experience, error)
	GetExperience(ctx context.Context, id string) (*domain.Experience, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
