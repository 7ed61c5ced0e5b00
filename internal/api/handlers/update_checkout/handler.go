package update_checkout

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
	useCase UpdateFormUseCase
	logger  Logger
}

func NewHandler(useCase UpdateFormUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /checkout - Missing session")
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req FormPatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.UpdateForm(r.Context(), sessionID, req.ToFormPatch())
	if err != nil {
		h.logger.Error("PATCH /checkout - Failed to update form: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !result.Guard.Proceed {
		handlers.RespondRedirect(w, checkoutView.PathFor(result.Guard.RedirectTo))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, checkoutView.FromView(result.View))
}
