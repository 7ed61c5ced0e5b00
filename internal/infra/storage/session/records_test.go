package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func TestRecords_PendingSelectionRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	records := NewRecords(store)
	ctx := context.Background()

	selection := &domain.PendingSelection{
		ExperienceID:   "exp-1",
		ExperienceName: "Kayaking",
		Price:          1000,
		Slot:           "2025-11-01T09:00:00Z",
	}
	require.NoError(t, records.SavePendingSelection(ctx, "sess-1", selection))

	raw, err := store.Get(ctx, "sess-1", domain.SessionKeyPendingSelection)
	require.NoError(t, err)
	assert.JSONEq(t, `{"experienceId":"exp-1","experienceName":"Kayaking","price":1000,"slot":"2025-11-01T09:00:00Z"}`, string(raw))

	got, err := records.GetPendingSelection(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, selection, got)

	require.NoError(t, records.DeletePendingSelection(ctx, "sess-1"))
	_, err = records.GetPendingSelection(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecords_ConfirmationOmitsEmptyPromo(t *testing.T) {
	store := NewMemoryStore()
	records := NewRecords(store)
	ctx := context.Background()

	require.NoError(t, records.SaveConfirmation(ctx, "sess-1", &domain.BookingConfirmation{
		ExperienceID: "exp-1",
		BookingID:    "bk-1",
		TotalPrice:   800,
	}))

	raw, err := store.Get(ctx, "sess-1", domain.SessionKeyBookingResult)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "promoCode")
}

func TestRecords_CorruptRecord(t *testing.T) {
	store := NewMemoryStore()
	records := NewRecords(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", domain.SessionKeyBookingResult, []byte(`{not json`)))

	_, err := records.GetConfirmation(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrCorruptRecord)
}
