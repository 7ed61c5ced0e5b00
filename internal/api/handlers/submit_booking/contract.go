package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

type SubmitUseCase interface {
	Submit(ctx context.Context, sessionID string, patch checkout.FormPatch) (*bookingFlow.SubmitResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
