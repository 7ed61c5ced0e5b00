package get_checkout

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

type EnterCheckoutUseCase interface {
	EnterCheckout(ctx context.Context, sessionID string) (*bookingFlow.CheckoutResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
