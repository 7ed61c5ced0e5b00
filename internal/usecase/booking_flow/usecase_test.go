package booking_flow

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	sessionStorage "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/session"
	"github.com/m04kA/SMC-StorefrontService/internal/integrations/experienceapi"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
	"github.com/m04kA/SMC-StorefrontService/pkg/logger"
)

const (
	testSession = "sess-1"
	testSlot    = "2025-11-01T09:00:00Z"
)

type fakeAPI struct {
	mu sync.Mutex

	experience    *domain.Experience
	getErr        error
	promoFn       func(code string) (*domain.PromoOutcome, error)
	createBooking func(req *experienceapi.BookingRequest) (*experienceapi.Booking, error)

	bookingRequests []*experienceapi.BookingRequest
	promoCalls      int
}

func (f *fakeAPI) GetExperience(_ context.Context, id string) (*domain.Experience, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.experience == nil || f.experience.ID != id {
		return nil, experienceapi.ErrExperienceNotFound
	}
	exp := *f.experience
	return &exp, nil
}

func (f *fakeAPI) ValidatePromo(_ context.Context, code string) (*domain.PromoOutcome, error) {
	f.mu.Lock()
	f.promoCalls++
	f.mu.Unlock()
	return f.promoFn(code)
}

func (f *fakeAPI) CreateBooking(_ context.Context, req *experienceapi.BookingRequest) (*experienceapi.Booking, error) {
	f.mu.Lock()
	f.bookingRequests = append(f.bookingRequests, req)
	f.mu.Unlock()
	return f.createBooking(req)
}

type flowFixture struct {
	uc      *UseCase
	api     *fakeAPI
	store   *sessionStorage.MemoryStore
	records *sessionStorage.Records
	forms   *checkout.FormRegistry
}

func newFixture() *flowFixture {
	api := &fakeAPI{
		experience: &domain.Experience{
			ID:             "exp-1",
			Name:           "Kayaking",
			Price:          1000,
			Duration:       2,
			AvailableSlots: []string{testSlot},
		},
		promoFn: func(code string) (*domain.PromoOutcome, error) {
			if code == "SAVE200" {
				return &domain.PromoOutcome{Valid: true, Discount: 200, Message: "Promo applied"}, nil
			}
			if code == "HUGE" {
				return &domain.PromoOutcome{Valid: true, Discount: 1500, Message: "Promo applied"}, nil
			}
			return &domain.PromoOutcome{Valid: false, Discount: 300, Message: "Invalid promo code"}, nil
		},
		createBooking: func(req *experienceapi.BookingRequest) (*experienceapi.Booking, error) {
			return &experienceapi.Booking{ID: "bk-1", CreatedAt: "2025-10-15T10:00:00Z"}, nil
		},
	}
	store := sessionStorage.NewMemoryStore()
	records := sessionStorage.NewRecords(store)
	forms := checkout.NewFormRegistry()

	return &flowFixture{
		uc:      NewUseCase(records, api, forms, logger.NewNop()),
		api:     api,
		store:   store,
		records: records,
		forms:   forms,
	}
}

func strPtr(s string) *string { return &s }

func validContact() checkout.FormPatch {
	return checkout.FormPatch{
		Name:  strPtr("Asha"),
		Email: strPtr("asha@example.com"),
		Phone: strPtr("+91 9876543210"),
	}
}

func (fx *flowFixture) selectSlot(t *testing.T) {
	t.Helper()
	_, err := fx.uc.SelectSlot(context.Background(), &SelectSlotRequest{
		SessionID:    testSession,
		ExperienceID: "exp-1",
		Slot:         testSlot,
	})
	require.NoError(t, err)
}

func TestSelectSlot_WritesPendingSelection(t *testing.T) {
	fx := newFixture()

	resp, err := fx.uc.SelectSlot(context.Background(), &SelectSlotRequest{
		SessionID:    testSession,
		ExperienceID: "exp-1",
		Slot:         testSlot,
	})
	require.NoError(t, err)
	assert.Equal(t, StateCheckout, resp.Next)

	stored, err := fx.records.GetPendingSelection(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, domain.PendingSelection{
		ExperienceID:   "exp-1",
		ExperienceName: "Kayaking",
		Price:          1000,
		Slot:           testSlot,
	}, *stored)
}

func TestSelectSlot_Errors(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	_, err := fx.uc.SelectSlot(ctx, &SelectSlotRequest{SessionID: testSession, ExperienceID: "exp-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = fx.uc.SelectSlot(ctx, &SelectSlotRequest{SessionID: testSession, ExperienceID: "missing", Slot: testSlot})
	assert.ErrorIs(t, err, ErrExperienceNotFound)

	_, err = fx.uc.SelectSlot(ctx, &SelectSlotRequest{SessionID: testSession, ExperienceID: "exp-1", Slot: "2030-01-01T00:00:00Z"})
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	fx.api.getErr = experienceapi.ErrNetwork
	_, err = fx.uc.SelectSlot(ctx, &SelectSlotRequest{SessionID: testSession, ExperienceID: "exp-1", Slot: testSlot})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestEnterCheckout_RedirectsWithoutSelection(t *testing.T) {
	fx := newFixture()

	result, err := fx.uc.EnterCheckout(context.Background(), testSession)
	require.NoError(t, err)
	assert.False(t, result.Guard.Proceed)
	assert.Equal(t, StateBrowsing, result.Guard.RedirectTo)
	assert.Nil(t, result.View)
}

func TestEnterCheckout_CorruptSelectionRedirects(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.store.Set(context.Background(), testSession, domain.SessionKeyPendingSelection, []byte(`{broken`)))

	result, err := fx.uc.EnterCheckout(context.Background(), testSession)
	require.NoError(t, err)
	assert.False(t, result.Guard.Proceed)

	_, err = fx.store.Get(context.Background(), testSession, domain.SessionKeyPendingSelection)
	assert.ErrorIs(t, err, sessionStorage.ErrRecordNotFound)
}

func TestEnterCheckout_ShowsSummary(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.EnterCheckout(context.Background(), testSession)
	require.NoError(t, err)
	require.True(t, result.Guard.Proceed)
	assert.Equal(t, "Kayaking", result.View.Selection.ExperienceName)
	assert.Equal(t, 1000.0, result.View.BasePrice)
	assert.Equal(t, 0.0, result.View.Discount)
	assert.Equal(t, 1000.0, result.View.Total)
}

func TestApplyPromo_ValidCodeReducesTotal(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("SAVE200"))
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, 200.0, result.View.Discount)
	assert.Equal(t, 800.0, result.View.Total)
	assert.NotContains(t, result.View.Form.Errors, checkout.FieldPromoCode)
}

func TestApplyPromo_OversizedDiscountClampsToZero(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("HUGE"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.View.Total)
}

func TestApplyPromo_InvalidCodeKeepsTotal(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("BOGUS"))
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, 1000.0, result.View.Total)
	assert.Equal(t, checkout.MsgInvalidPromoCode, result.View.Form.Errors[checkout.FieldPromoCode])
	require.NotNil(t, result.View.Form.Promo)
	assert.False(t, result.View.Form.Promo.Valid)
}

func TestApplyPromo_EmptyCodeSkipsNetwork(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("  "))
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, checkout.MsgPromoCodeRequired, result.View.Form.Errors[checkout.FieldPromoCode])
	assert.Equal(t, 0, fx.api.promoCalls)
}

func TestApplyPromo_TransportFailureSynthesizesInvalidOutcome(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	fx.api.promoFn = func(string) (*domain.PromoOutcome, error) {
		return nil, experienceapi.ErrNetwork
	}

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("SAVE200"))
	require.NoError(t, err)
	require.NotNil(t, result.View.Form.Promo)
	assert.Equal(t, domain.PromoOutcome{Valid: false, Discount: 0, Message: checkout.MsgInvalidPromoCode}, *result.View.Form.Promo)
	assert.Equal(t, checkout.MsgPromoCheckFailed, result.View.Form.Errors[checkout.FieldPromoCode])
	assert.Equal(t, 1000.0, result.View.Total)
}

func TestApplyPromo_StaleResponseDoesNotOverwriteNewerCode(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	// Пользователь меняет промокод, пока идет проверка предыдущего
	fx.api.promoFn = func(code string) (*domain.PromoOutcome, error) {
		_, err := fx.uc.UpdateForm(context.Background(), testSession, checkout.FormPatch{PromoCode: strPtr("OTHER")})
		require.NoError(t, err)
		return &domain.PromoOutcome{Valid: true, Discount: 200}, nil
	}

	result, err := fx.uc.ApplyPromo(context.Background(), testSession, strPtr("SAVE200"))
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Nil(t, result.View.Form.Promo)
	assert.Equal(t, "OTHER", result.View.Form.Contact.PromoCode)
	assert.Equal(t, 1000.0, result.View.Total)
}

func TestUpdateForm_EditingPromoClearsOutcome(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	_, err := fx.uc.ApplyPromo(ctx, testSession, strPtr("SAVE200"))
	require.NoError(t, err)

	result, err := fx.uc.UpdateForm(ctx, testSession, checkout.FormPatch{PromoCode: strPtr("SAVE20")})
	require.NoError(t, err)
	assert.Nil(t, result.View.Form.Promo)
	assert.Equal(t, 1000.0, result.View.Total)

	patch := validContact()
	submit, err := fx.uc.Submit(ctx, testSession, patch)
	require.NoError(t, err)
	require.Equal(t, StateConfirmed, submit.State)
	assert.Equal(t, 1000.0, submit.Confirmation.TotalPrice)
	assert.Equal(t, "SAVE20", submit.Confirmation.PromoCode)
}

func TestSubmit_RedirectsWithoutSelection(t *testing.T) {
	fx := newFixture()

	result, err := fx.uc.Submit(context.Background(), testSession, validContact())
	require.NoError(t, err)
	assert.False(t, result.Guard.Proceed)
	assert.Empty(t, fx.api.bookingRequests)
}

func TestSubmit_InvalidFieldsSkipNetwork(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.Submit(context.Background(), testSession, checkout.FormPatch{
		Name:  strPtr(""),
		Email: strPtr("a@b"),
		Phone: strPtr("12345"),
	})
	require.NoError(t, err)
	assert.Equal(t, StateCheckout, result.State)
	assert.Equal(t, checkout.MsgNameRequired, result.View.Form.Errors[checkout.FieldName])
	assert.Equal(t, checkout.MsgInvalidEmail, result.View.Form.Errors[checkout.FieldEmail])
	assert.Equal(t, checkout.MsgInvalidPhone, result.View.Form.Errors[checkout.FieldPhone])
	assert.Empty(t, fx.api.bookingRequests)
}

func TestSubmit_SuccessStoresConfirmationAndClearsSelection(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	_, err := fx.uc.ApplyPromo(ctx, testSession, strPtr("SAVE200"))
	require.NoError(t, err)

	result, err := fx.uc.Submit(ctx, testSession, validContact())
	require.NoError(t, err)
	require.Equal(t, StateConfirmed, result.State)

	expected := &domain.BookingConfirmation{
		ExperienceID:   "exp-1",
		ExperienceName: "Kayaking",
		Price:          1000,
		Slot:           testSlot,
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "+91 9876543210",
		PromoCode:      "SAVE200",
		TotalPrice:     800,
		BookingID:      "bk-1",
		CreatedAt:      "2025-10-15T10:00:00Z",
	}
	assert.Equal(t, expected, result.Confirmation)

	stored, err := fx.records.GetConfirmation(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, expected, stored)

	_, err = fx.records.GetPendingSelection(ctx, testSession)
	assert.ErrorIs(t, err, sessionStorage.ErrRecordNotFound)
	assert.Equal(t, 0, fx.forms.Len())

	require.Len(t, fx.api.bookingRequests, 1)
	req := fx.api.bookingRequests[0]
	assert.Equal(t, "exp-1", req.ExperienceID)
	assert.Equal(t, testSlot, req.Slot)
	require.NotNil(t, req.PromoCode)
	assert.Equal(t, "SAVE200", *req.PromoCode)
}

func TestSubmit_WithoutPromoOmitsCode(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)

	result, err := fx.uc.Submit(context.Background(), testSession, validContact())
	require.NoError(t, err)
	require.Equal(t, StateConfirmed, result.State)
	assert.Empty(t, result.Confirmation.PromoCode)
	assert.Nil(t, fx.api.bookingRequests[0].PromoCode)
	assert.Equal(t, 1000.0, result.Confirmation.TotalPrice)
}

func TestSubmit_InvalidPromoOutcomeDoesNotReduceTotal(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	_, err := fx.uc.ApplyPromo(ctx, testSession, strPtr("BOGUS"))
	require.NoError(t, err)

	result, err := fx.uc.Submit(ctx, testSession, validContact())
	require.NoError(t, err)
	assert.Equal(t, 1000.0, result.Confirmation.TotalPrice)
}

func TestSubmit_FailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "server rejection shown verbatim",
			err:     &experienceapi.RejectionError{StatusCode: http.StatusConflict, Message: "Slot no longer available"},
			message: "Slot no longer available",
		},
		{
			name:    "network failure",
			err:     experienceapi.ErrNetwork,
			message: checkout.MsgNetworkUnavailable,
		},
		{
			name:    "generic fallback",
			err:     &experienceapi.StatusError{StatusCode: http.StatusInternalServerError},
			message: checkout.MsgBookingFailed,
		},
		{
			name:    "unknown error",
			err:     errors.New("boom"),
			message: checkout.MsgBookingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			fx.selectSlot(t)
			fx.api.createBooking = func(*experienceapi.BookingRequest) (*experienceapi.Booking, error) {
				return nil, tt.err
			}

			result, err := fx.uc.Submit(context.Background(), testSession, validContact())
			require.NoError(t, err)
			assert.Equal(t, StateCheckout, result.State)
			assert.Equal(t, tt.message, result.View.Form.SubmitError)
			assert.False(t, result.View.Form.Submitting)

			_, err = fx.records.GetPendingSelection(context.Background(), testSession)
			assert.NoError(t, err, "selection must survive a failed submission")
			_, err = fx.records.GetConfirmation(context.Background(), testSession)
			assert.ErrorIs(t, err, sessionStorage.ErrRecordNotFound)
		})
	}
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	fx.api.createBooking = func(*experienceapi.BookingRequest) (*experienceapi.Booking, error) {
		return nil, experienceapi.ErrNetwork
	}
	first, err := fx.uc.Submit(ctx, testSession, validContact())
	require.NoError(t, err)
	require.Equal(t, StateCheckout, first.State)

	fx.api.createBooking = func(*experienceapi.BookingRequest) (*experienceapi.Booking, error) {
		return &experienceapi.Booking{ID: "bk-2"}, nil
	}
	second, err := fx.uc.Submit(ctx, testSession, checkout.FormPatch{})
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, second.State)
	assert.Equal(t, "bk-2", second.Confirmation.BookingID)
}

// failingStore отказывает в записи и удалении указанных ключей
type failingStore struct {
	*sessionStorage.MemoryStore
	failSet    map[string]bool
	failDelete map[string]bool
}

func (s *failingStore) Set(ctx context.Context, sessionID, key string, payload []byte) error {
	if s.failSet[key] {
		return errors.New("store unavailable")
	}
	return s.MemoryStore.Set(ctx, sessionID, key, payload)
}

func (s *failingStore) Delete(ctx context.Context, sessionID, key string) error {
	if s.failDelete[key] {
		return errors.New("store unavailable")
	}
	return s.MemoryStore.Delete(ctx, sessionID, key)
}

func (fx *flowFixture) useStore(store sessionStorage.Store) {
	fx.records = sessionStorage.NewRecords(store)
	fx.uc = NewUseCase(fx.records, fx.api, fx.forms, logger.NewNop())
}

func TestSubmit_ConfirmationSaveFailureDoesNotDuplicateBooking(t *testing.T) {
	tests := []struct {
		name             string
		failDelete       map[string]bool
		selectionRemains bool
	}{
		{
			name: "selection cleared, retry redirects home",
		},
		{
			name:             "selection stuck, retry rejected by form",
			failDelete:       map[string]bool{domain.SessionKeyPendingSelection: true},
			selectionRemains: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			fx.selectSlot(t)
			fx.useStore(&failingStore{
				MemoryStore: fx.store,
				failSet:     map[string]bool{domain.SessionKeyBookingResult: true},
				failDelete:  tt.failDelete,
			})
			ctx := context.Background()

			_, err := fx.uc.Submit(ctx, testSession, validContact())
			require.ErrorIs(t, err, ErrInternal)

			retry, err := fx.uc.Submit(ctx, testSession, checkout.FormPatch{})
			if tt.selectionRemains {
				assert.ErrorIs(t, err, ErrSubmitInProgress)
			} else {
				require.NoError(t, err)
				assert.False(t, retry.Guard.Proceed)
				assert.Equal(t, StateBrowsing, retry.Guard.RedirectTo)
			}
			assert.Len(t, fx.api.bookingRequests, 1)
		})
	}
}

func TestSubmit_FixedFieldsLoseTheirErrors(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	first, err := fx.uc.Submit(ctx, testSession, checkout.FormPatch{})
	require.NoError(t, err)
	require.Len(t, first.View.Form.Errors, 3)

	second, err := fx.uc.Submit(ctx, testSession, checkout.FormPatch{Name: strPtr("Asha")})
	require.NoError(t, err)
	assert.Equal(t, StateCheckout, second.State)
	assert.NotContains(t, second.View.Form.Errors, checkout.FieldName)
	assert.Equal(t, checkout.MsgInvalidEmail, second.View.Form.Errors[checkout.FieldEmail])
	assert.Equal(t, checkout.MsgInvalidPhone, second.View.Form.Errors[checkout.FieldPhone])
	assert.Empty(t, fx.api.bookingRequests)
}

func TestEnterConfirmation_RedirectsWithoutRecord(t *testing.T) {
	fx := newFixture()

	result, err := fx.uc.EnterConfirmation(context.Background(), testSession)
	require.NoError(t, err)
	assert.False(t, result.Guard.Proceed)
	assert.Equal(t, StateBrowsing, result.Guard.RedirectTo)
}

func TestEnterConfirmation_SingleConsumption(t *testing.T) {
	fx := newFixture()
	fx.selectSlot(t)
	ctx := context.Background()

	_, err := fx.uc.Submit(ctx, testSession, validContact())
	require.NoError(t, err)

	// остаток выбора, который должен быть удален вместе с результатом
	require.NoError(t, fx.records.SavePendingSelection(ctx, testSession, &domain.PendingSelection{ExperienceID: "exp-1"}))

	first, err := fx.uc.EnterConfirmation(ctx, testSession)
	require.NoError(t, err)
	require.True(t, first.Guard.Proceed)
	assert.Equal(t, "bk-1", first.Confirmation.BookingID)

	_, err = fx.records.GetPendingSelection(ctx, testSession)
	assert.ErrorIs(t, err, sessionStorage.ErrRecordNotFound)

	reload, err := fx.uc.EnterConfirmation(ctx, testSession)
	require.NoError(t, err)
	assert.False(t, reload.Guard.Proceed)
	assert.Nil(t, reload.Confirmation)
}

func TestGuards(t *testing.T) {
	assert.Equal(t, Guard{Proceed: false, RedirectTo: StateBrowsing}, CheckoutGuard(nil))
	assert.Equal(t, Guard{Proceed: true}, CheckoutGuard(&domain.PendingSelection{}))
	assert.Equal(t, Guard{Proceed: false, RedirectTo: StateBrowsing}, ConfirmationGuard(nil))
	assert.Equal(t, Guard{Proceed: true}, ConfirmationGuard(&domain.BookingConfirmation{}))
}
