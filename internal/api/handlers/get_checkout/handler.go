package get_checkout

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
)

const msgMissingSession = "missing session"

type Handler struct {
	useCase EnterCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase EnterCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("GET /checkout - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	result, err := h.useCase.EnterCheckout(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /checkout - Failed to enter checkout: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Guard.Proceed {
		handlers.RespondRedirect(w, checkoutView.PathFor(result.Guard.RedirectTo))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, checkoutView.FromView(result.View))
}
