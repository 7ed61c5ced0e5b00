package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// Records типизированный доступ к двум записям сессии:
// ожидающему выбору и результату бронирования
type Records struct {
	store Store
}

func NewRecords(store Store) *Records {
	return &Records{store: store}
}

func (r *Records) GetPendingSelection(ctx context.Context, sessionID string) (*domain.PendingSelection, error) {
	var selection domain.PendingSelection
	if err := r.load(ctx, sessionID, domain.SessionKeyPendingSelection, &selection); err != nil {
		return nil, err
	}
	return &selection, nil
}

func (r *Records) SavePendingSelection(ctx context.Context, sessionID string, selection *domain.PendingSelection) error {
	return r.save(ctx, sessionID, domain.SessionKeyPendingSelection, selection)
}

func (r *Records) DeletePendingSelection(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionID, domain.SessionKeyPendingSelection)
}

func (r *Records) GetConfirmation(ctx context.Context, sessionID string) (*domain.BookingConfirmation, error) {
	var confirmation domain.BookingConfirmation
	if err := r.load(ctx, sessionID, domain.SessionKeyBookingResult, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (r *Records) SaveConfirmation(ctx context.Context, sessionID string, confirmation *domain.BookingConfirmation) error {
	return r.save(ctx, sessionID, domain.SessionKeyBookingResult, confirmation)
}

func (r *Records) DeleteConfirmation(ctx context.Context, sessionID string) error {
	return r.store.Delete(ctx, sessionID, domain.SessionKeyBookingResult)
}

func (r *Records) load(ctx context.Context, sessionID, key string, out interface{}) error {
	payload, err := r.store.Get(ctx, sessionID, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrCorruptRecord, key, err)
	}
	return nil
}

func (r *Records) save(ctx context.Context, sessionID, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("session.storage: failed to encode %s: %w", key, err)
	}
	return r.store.Set(ctx, sessionID, key, payload)
}
