package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSession     = "missing session"
	msgSubmitInProgress   = "Booking is already being processed"
)

type Handler struct {
	useCase SubmitUseCase
	logger  Logger
}

func NewHandler(useCase SubmitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout
//
// 201 - бронирование создано, 422 - форма с ошибками полей или ошибкой отправки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Submit(r.Context(), sessionID, req.ToFormPatch())
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrSubmitInProgress):
			h.logger.Warn("POST /checkout - Submission already in progress")
			handlers.RespondConflict(w, msgSubmitInProgress)

		default:
			h.logger.Error("POST /checkout - Failed to submit booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Guard.Proceed {
		handlers.RespondRedirect(w, checkoutView.PathFor(result.Guard.RedirectTo))
		return
	}

	if result.State != bookingFlow.StateConfirmed {
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, checkoutView.FromView(result.View))
		return
	}

	h.logger.Info("POST /checkout - Booking created: booking_id=%s", result.Confirmation.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, checkoutView.FromConfirmation(
		result.Confirmation, checkoutView.PathFor(result.State),
	))
}
