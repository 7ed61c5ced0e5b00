package apply_promo

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

type ApplyPromoUseCase interface {
	ApplyPromo(ctx context.Context, sessionID string, code *string) (*bookingFlow.PromoResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
