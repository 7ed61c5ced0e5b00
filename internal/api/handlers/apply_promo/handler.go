package apply_promo

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	checkoutView "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/checkout_view"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSession     = "missing session"
)

type Handler struct {
	useCase ApplyPromoUseCase
	logger  Logger
}

func NewHandler(useCase ApplyPromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/checkout/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("POST /checkout/promo - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req ApplyPromoRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /checkout/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ApplyPromo(r.Context(), sessionID, req.PromoCode)
	if err != nil {
		h.logger.Error("POST /checkout/promo - Failed to apply promo: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Guard.Proceed {
		handlers.RespondRedirect(w, checkoutView.PathFor(result.Guard.RedirectTo))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
