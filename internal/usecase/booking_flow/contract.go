package booking_flow

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/integrations/experienceapi"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
)

// SessionRecords записи сессии, через которые страницы передают состояние друг другу
type SessionRecords interface {
	GetPendingSelection(ctx context.Context, sessionID string) (*domain.PendingSelection, error)
	SavePendingSelection(ctx context.Context, sessionID string, selection *domain.PendingSelection) error
	DeletePendingSelection(ctx context.Context, sessionID string) error
	GetConfirmation(ctx context.Context, sessionID string) (*domain.BookingConfirmation, error)
	SaveConfirmation(ctx context.Context, sessionID string, confirmation *domain.BookingConfirmation) error
	DeleteConfirmation(ctx context.Context, sessionID string) error
}

// ExperienceAPIClient интерфейс клиента удаленного API
type ExperienceAPIClient interface {
	GetExperience(ctx context.Context, id string) (*domain.Experience, error)
	ValidatePromo(ctx context.Context, code string) (*domain.PromoOutcome, error)
	CreateBooking(ctx context.Context, req *experienceapi.BookingRequest) (*experienceapi.Booking, error)
}

// FormRegistry формы оформления по сессиям
type FormRegistry interface {
	Acquire(sessionID string, selection domain.PendingSelection) *checkout.Form
	Drop(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
