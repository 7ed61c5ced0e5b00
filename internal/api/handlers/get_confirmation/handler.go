package get_confirmation

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
)

const msgMissingSession = "missing session"

type Handler struct {
	useCase EnterConfirmationUseCase
	logger  Logger
}

func NewHandler(useCase EnterConfirmationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/confirmation
// Подтверждение отдается один раз, повторный запрос перенаправляет в каталог
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /confirmation - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	result, err := h.useCase.EnterConfirmation(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /confirmation - Failed to read confirmation: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Guard.Proceed {
		handlers.RespondRedirect(w, checkoutView.PathFor(result.Guard.RedirectTo))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, checkoutView.FromConfirmation(result.Confirmation, ""))
}
