package booking_flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	sessionStorage "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/session"
	"github.com/m04kA/SMC-StorefrontService/internal/integrations/experienceapi"
	"github.com/m04kA/SMC-StorefrontService/internal/service/checkout"
)

// UseCase сценарий бронирования: выбор слота -> оформление -> подтверждение
type UseCase struct {
	records SessionRecords
	api     ExperienceAPIClient
	forms   FormRegistry
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	records SessionRecords,
	api ExperienceAPIClient,
	forms FormRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		records: records,
		api:     api,
		forms:   forms,
		logger:  logger,
	}
}

// SelectSlot сохраняет выбор пользователя и переводит на страницу оформления
// Имя и цена фиксируются в момент выбора
func (uc *UseCase) SelectSlot(ctx context.Context, req *SelectSlotRequest) (*SelectSlotResponse, error) {
	if req.SessionID == "" || strings.TrimSpace(req.ExperienceID) == "" || strings.TrimSpace(req.Slot) == "" {
		return nil, fmt.Errorf("%w: session, experience and slot are required", ErrInvalidInput)
	}

	uc.logger.Info("SelectSlot: session=%s, experience=%s, slot=%s", req.SessionID, req.ExperienceID, req.Slot)

	exp, err := uc.api.GetExperience(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceapi.ErrExperienceNotFound) {
			uc.logger.Warn("SelectSlot: experience id=%s not found", req.ExperienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("SelectSlot: failed to get experience id=%s: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if !exp.HasSlot(req.Slot) {
		uc.logger.Warn("SelectSlot: slot=%s is not offered by experience id=%s", req.Slot, req.ExperienceID)
		return nil, ErrSlotNotOffered
	}

	selection := domain.PendingSelection{
		ExperienceID:   exp.ID,
		ExperienceName: exp.Name,
		Price:          exp.Price,
		Slot:           req.Slot,
	}
	if err := uc.records.SavePendingSelection(ctx, req.SessionID, &selection); err != nil {
		uc.logger.Error("SelectSlot: failed to save selection for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	return &SelectSlotResponse{Selection: selection, Next: StateCheckout}, nil
}

// EnterCheckout вход на страницу оформления
// Без ожидающего выбора возвращается перенаправление в каталог
func (uc *UseCase) EnterCheckout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	selection, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guard := CheckoutGuard(selection)
	if !guard.Proceed {
		uc.logger.Info("EnterCheckout: no pending selection for session=%s, redirecting", sessionID)
		return &CheckoutResult{Guard: guard}, nil
	}

	form := uc.forms.Acquire(sessionID, *selection)
	return &CheckoutResult{Guard: guard, View: buildView(form)}, nil
}

// UpdateForm изменяет поля формы
// Изменение промокода сбрасывает прежний результат его проверки
func (uc *UseCase) UpdateForm(ctx context.Context, sessionID string, patch checkout.FormPatch) (*CheckoutResult, error) {
	selection, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guard := CheckoutGuard(selection)
	if !guard.Proceed {
		return &CheckoutResult{Guard: guard}, nil
	}

	form := uc.forms.Acquire(sessionID, *selection)
	form.Apply(patch)
	return &CheckoutResult{Guard: guard, View: buildView(form)}, nil
}

// ApplyPromo проверяет промокод по явному запросу пользователя
// Ошибка API не блокирует оформление: результат заменяется локальным "невалидным"
func (uc *UseCase) ApplyPromo(ctx context.Context, sessionID string, code *string) (*PromoResult, error) {
	selection, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guard := CheckoutGuard(selection)
	if !guard.Proceed {
		return &PromoResult{Guard: guard}, nil
	}

	form := uc.forms.Acquire(sessionID, *selection)
	if code != nil {
		form.SetPromoCode(*code)
	}

	token, promoCode, err := form.BeginPromoValidation()
	if err != nil {
		uc.logger.Info("ApplyPromo: empty promo code for session=%s", sessionID)
		return &PromoResult{Guard: guard, View: buildView(form)}, nil
	}

	outcome, fieldError := uc.validatePromo(ctx, promoCode)

	applied := false
	if ctx.Err() == nil {
		applied = form.CompletePromoValidation(token, promoCode, outcome, fieldError)
	}
	if !applied {
		uc.logger.Info("ApplyPromo: discarded stale result for code=%s, session=%s", promoCode, sessionID)
	}

	return &PromoResult{Guard: guard, View: buildView(form), Applied: applied}, nil
}

// Submit отправляет форму
// Ошибки полей и отказ API оставляют пользователя на странице оформления
func (uc *UseCase) Submit(ctx context.Context, sessionID string, patch checkout.FormPatch) (*SubmitResult, error) {
	selection, err := uc.loadSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	guard := CheckoutGuard(selection)
	if !guard.Proceed {
		return &SubmitResult{Guard: guard}, nil
	}

	form := uc.forms.Acquire(sessionID, *selection)
	form.Apply(patch)

	submission, fieldErrors, err := form.BeginSubmit()
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrSubmitInProgress):
			uc.logger.Warn("Submit: submission already in progress for session=%s", sessionID)
			return nil, ErrSubmitInProgress
		case errors.Is(err, checkout.ErrAlreadySubmitted):
			uc.logger.Warn("Submit: booking already created for session=%s, rejecting resubmission", sessionID)
			return nil, fmt.Errorf("%w: booking already created", ErrSubmitInProgress)
		}
		uc.logger.Info("Submit: %d invalid fields for session=%s", len(fieldErrors), sessionID)
		return &SubmitResult{Guard: guard, State: StateCheckout, View: buildView(form)}, nil
	}

	booking, err := uc.api.CreateBooking(ctx, buildBookingRequest(submission))
	if err != nil {
		message := submissionErrorMessage(err)
		uc.logger.Warn("Submit: booking failed for session=%s, experience=%s: %v",
			sessionID, submission.Selection.ExperienceID, err)
		form.FailSubmit(message)
		return &SubmitResult{Guard: guard, State: StateCheckout, View: buildView(form)}, nil
	}

	confirmation := &domain.BookingConfirmation{
		ExperienceID:   submission.Selection.ExperienceID,
		ExperienceName: submission.Selection.ExperienceName,
		Price:          submission.Selection.Price,
		Slot:           submission.Selection.Slot,
		Name:           submission.Contact.Name,
		Email:          submission.Contact.Email,
		Phone:          submission.Contact.Phone,
		PromoCode:      submission.Contact.PromoCode,
		TotalPrice:     submission.Total,
		BookingID:      booking.ID,
		CreatedAt:      booking.CreatedAt,
	}

	if err := uc.records.SaveConfirmation(ctx, sessionID, confirmation); err != nil {
		// Бронирование уже создано: форма остается закрытой для отправки, выбор снимается
		form.FinishSubmit()
		uc.logger.Error("Submit: booking id=%s created but confirmation not saved for session=%s: %v",
			booking.ID, sessionID, err)
		if delErr := uc.records.DeletePendingSelection(ctx, sessionID); delErr != nil {
			uc.logger.Warn("Submit: failed to delete pending selection for session=%s: %v", sessionID, delErr)
		}
		return nil, fmt.Errorf("%w: failed to save confirmation: %v", ErrInternal, err)
	}

	if err := uc.records.DeletePendingSelection(ctx, sessionID); err != nil {
		uc.logger.Warn("Submit: failed to delete pending selection for session=%s: %v", sessionID, err)
	}

	form.FinishSubmit()
	uc.forms.Drop(sessionID)

	uc.logger.Info("Submit: booking id=%s created for session=%s, total=%.2f", booking.ID, sessionID, submission.Total)

	return &SubmitResult{Guard: guard, State: StateConfirmed, Confirmation: confirmation}, nil
}

// EnterConfirmation вход на страницу подтверждения
// Запись читается один раз: после чтения удаляются и результат, и остаток выбора
func (uc *UseCase) EnterConfirmation(ctx context.Context, sessionID string) (*ConfirmationResult, error) {
	confirmation, err := uc.records.GetConfirmation(ctx, sessionID)
	switch {
	case err == nil:
	case errors.Is(err, sessionStorage.ErrRecordNotFound):
		confirmation = nil
	case errors.Is(err, sessionStorage.ErrCorruptRecord):
		uc.logger.Warn("EnterConfirmation: corrupt confirmation for session=%s, discarding: %v", sessionID, err)
		uc.discard(ctx, sessionID, domain.SessionKeyBookingResult)
		confirmation = nil
	default:
		uc.logger.Error("EnterConfirmation: failed to read confirmation for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to read confirmation: %v", ErrInternal, err)
	}

	guard := ConfirmationGuard(confirmation)
	if !guard.Proceed {
		uc.logger.Info("EnterConfirmation: no confirmation for session=%s, redirecting", sessionID)
		return &ConfirmationResult{Guard: guard}, nil
	}

	if err := uc.records.DeleteConfirmation(ctx, sessionID); err != nil {
		uc.logger.Error("EnterConfirmation: failed to consume confirmation for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to consume confirmation: %v", ErrInternal, err)
	}
	if err := uc.records.DeletePendingSelection(ctx, sessionID); err != nil {
		uc.logger.Warn("EnterConfirmation: failed to delete pending selection for session=%s: %v", sessionID, err)
	}
	uc.forms.Drop(sessionID)

	uc.logger.Info("EnterConfirmation: booking id=%s shown for session=%s", confirmation.BookingID, sessionID)
	return &ConfirmationResult{Guard: guard, Confirmation: confirmation}, nil
}

// loadSelection отсутствие или поврежденная запись означают "выбора нет"
func (uc *UseCase) loadSelection(ctx context.Context, sessionID string) (*domain.PendingSelection, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	selection, err := uc.records.GetPendingSelection(ctx, sessionID)
	switch {
	case err == nil:
		return selection, nil
	case errors.Is(err, sessionStorage.ErrRecordNotFound):
		return nil, nil
	case errors.Is(err, sessionStorage.ErrCorruptRecord):
		uc.logger.Warn("loadSelection: corrupt selection for session=%s, discarding: %v", sessionID, err)
		uc.discard(ctx, sessionID, domain.SessionKeyPendingSelection)
		return nil, nil
	default:
		uc.logger.Error("loadSelection: failed to read selection for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to read selection: %v", ErrInternal, err)
	}
}

func (uc *UseCase) discard(ctx context.Context, sessionID, key string) {
	var err error
	switch key {
	case domain.SessionKeyPendingSelection:
		err = uc.records.DeletePendingSelection(ctx, sessionID)
	case domain.SessionKeyBookingResult:
		err = uc.records.DeleteConfirmation(ctx, sessionID)
	}
	if err != nil {
		uc.logger.Warn("discard: failed to delete %s for session=%s: %v", key, sessionID, err)
	}
}

// validatePromo возвращает результат проверки и сообщение для поля promoCode
func (uc *UseCase) validatePromo(ctx context.Context, code string) (domain.PromoOutcome, string) {
	outcome, err := uc.api.ValidatePromo(ctx, code)
	if err != nil {
		uc.logger.Warn("validatePromo: promo validation failed for code=%s: %v", code, err)
		return domain.PromoOutcome{Valid: false, Discount: 0, Message: checkout.MsgInvalidPromoCode}, checkout.MsgPromoCheckFailed
	}

	if !outcome.Valid {
		return *outcome, checkout.MsgInvalidPromoCode
	}
	return *outcome, ""
}

func buildView(form *checkout.Form) *CheckoutView {
	state := form.State()
	selection := form.Selection()

	return &CheckoutView{
		Selection: selection,
		Form:      state,
		BasePrice: selection.Price,
		Discount:  checkout.AppliedDiscount(state.Promo),
		Total:     checkout.CalculateTotal(selection.Price, state.Promo),
	}
}

func buildBookingRequest(submission *checkout.Submission) *experienceapi.BookingRequest {
	req := &experienceapi.BookingRequest{
		UserName:     submission.Contact.Name,
		UserEmail:    submission.Contact.Email,
		UserPhone:    submission.Contact.Phone,
		ExperienceID: submission.Selection.ExperienceID,
		Slot:         submission.Selection.Slot,
	}
	if submission.Contact.PromoCode != "" {
		promo := submission.Contact.PromoCode
		req.PromoCode = &promo
	}
	return req
}

// submissionErrorMessage сообщение об ошибке отправки для пользователя
// Отказ сервера показывается как есть, отсутствие ответа - сообщением о соединении
func submissionErrorMessage(err error) string {
	var rejection *experienceapi.RejectionError
	switch {
	case errors.As(err, &rejection):
		return rejection.Message
	case errors.Is(err, experienceapi.ErrNetwork):
		return checkout.MsgNetworkUnavailable
	default:
		return checkout.MsgBookingFailed
	}
}
