package get_confirmation

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

type EnterConfirmationUseCase interface {
	EnterConfirmation(ctx context.Context, sessionID string) (*bookingFlow.ConfirmationResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
