package list_experiences

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	browseCatalog "github.com/m04kA/SMC-StorefrontService/internal/usecase/browse_catalog"
)

const (
	msgInvalidVisible     = "visible must be a non-negative number"
	msgCatalogUnavailable = "Failed to load experiences"
)

type Handler struct {
	useCase ListExperiencesUseCase
	logger  Logger
}

func NewHandler(useCase ListExperiencesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences?q=&visible=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &browseCatalog.ListRequest{Query: query.Get("q")}
	if raw := query.Get("visible"); raw != "" {
		visible, err := strconv.Atoi(raw)
		if err != nil || visible < 0 {
			h.logger.Warn("GET /experiences - Invalid visible: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidVisible)
			return
		}
		req.Visible = visible
	}

	result, err := h.useCase.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, browseCatalog.ErrInvalidInput):
			h.logger.Warn("GET /experiences - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVisible)

		case errors.Is(err, browseCatalog.ErrCatalogUnavailable):
			h.logger.Error("GET /experiences - Catalog unavailable: %v", err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
