package select_slot

import (
	"context"

	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

type SelectSlotUseCase interface {
	SelectSlot(ctx context.Context, req *bookingFlow.SelectSlotRequest) (*bookingFlow.SelectSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
