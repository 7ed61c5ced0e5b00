package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	bookingFlow "github.com/m04kA/SMC-StorefrontService/internal/usecase/booking_flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSession     = "missing session"
	msgSlotRequired       = "Please select a time slot"
	msgNotFound           = "Experience not found"
	msgSlotNotOffered     = "Selected time slot is not available"
	msgCatalogUnavailable = "Failed to load experience"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/experiences/{experienceId}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experienceID := mux.Vars(r)["experienceId"]

	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /experiences/{id}/select - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /experiences/{id}/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.SelectSlot(r.Context(), req.ToUseCaseRequest(sessionID, experienceID))
	if err != nil {
		switch {
		case errors.Is(err, bookingFlow.ErrInvalidInput):
			h.logger.Warn("POST /experiences/{id}/select - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgSlotRequired)

		case errors.Is(err, bookingFlow.ErrExperienceNotFound):
			h.logger.Warn("POST /experiences/{id}/select - Experience not found: experience_id=%s", experienceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookingFlow.ErrSlotNotOffered):
			h.logger.Warn("POST /experiences/{id}/select - Slot not offered: experience_id=%s, slot=%s", experienceID, req.Slot)
			handlers.RespondConflict(w, msgSlotNotOffered)

		case errors.Is(err, bookingFlow.ErrCatalogUnavailable):
			h.logger.Error("POST /experiences/{id}/select - Catalog unavailable: experience_id=%s, error=%v", experienceID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /experiences/{id}/select - Failed to select slot: experience_id=%s, error=%v", experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /experiences/{id}/select - Slot selected: experience_id=%s, slot=%s", experienceID, req.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
