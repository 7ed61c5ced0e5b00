package get_experience

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

type GetExperienceUseCase interface {
	Get(ctx context.Context, id string) (*domain.Experience, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
