package get_experience

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	listExperiences "github.com/m04kA/SMC-StorefrontService/internal/api/handlers/list_experiences"
	browseCatalog "github.com/m04kA/SMC-StorefrontService/internal/usecase/browse_catalog"
)

const (
	msgInvalidExperienceID = "experience id is required"
	msgNotFound            = "Experience not found"
	msgCatalogUnavailable  = "Failed to load experience"
)

type Handler struct {
	useCase GetExperienceUseCase
	logger  Logger
}

func NewHandler(useCase GetExperienceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{experienceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experienceID := mux.Vars(r)["experienceId"]

	exp, err := h.useCase.Get(r.Context(), experienceID)
	if err != nil {
		switch {
		case errors.Is(err, browseCatalog.ErrInvalidInput):
			h.logger.Warn("GET /experiences/{id} - Invalid experience ID")
			handlers.RespondBadRequest(w, msgInvalidExperienceID)

		case errors.Is(err, browseCatalog.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id} - Experience not found: experience_id=%s", experienceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, browseCatalog.ErrCatalogUnavailable):
			h.logger.Error("GET /experiences/{id} - Catalog unavailable: experience_id=%s, error=%v", experienceID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /experiences/{id} - Failed to get experience: experience_id=%s, error=%v", experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listExperiences.FromExperience(exp))
}
