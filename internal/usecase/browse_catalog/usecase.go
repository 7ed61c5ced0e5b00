package browse_catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/integrations/experienceapi"
)

// UseCase просмотр каталога впечатлений
type UseCase struct {
	api    ExperienceAPIClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(api ExperienceAPIClient, logger Logger) *UseCase {
	return &UseCase{
		api:    api,
		logger: logger,
	}
}

// List возвращает окно отфильтрованного каталога
// Каталог каждый раз читается целиком, фильтрация и окно считаются локально
func (uc *UseCase) List(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	visible, err := normalizeVisible(req.Visible)
	if err != nil {
		uc.logger.Warn("ListExperiences: validation failed: %v", err)
		return nil, err
	}

	items, err := uc.api.ListExperiences(ctx)
	if err != nil {
		uc.logger.Error("ListExperiences: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	filtered := filterExperiences(items, req.Query)
	window := filtered
	if len(window) > visible {
		window = window[:visible]
	}

	resp := &ListResponse{
		Items:   window,
		Total:   len(filtered),
		Visible: visible,
		HasMore: len(filtered) > visible,
	}
	if resp.HasMore {
		resp.Next = visible + domain.VisibleExperiencesStep
	}

	uc.logger.Info("ListExperiences: query=%q, total=%d, shown=%d", req.Query, resp.Total, len(resp.Items))
	return resp, nil
}

// Get возвращает детали впечатления
func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Experience, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: experience id is required", ErrInvalidInput)
	}

	exp, err := uc.api.GetExperience(ctx, id)
	if err != nil {
		if errors.Is(err, experienceapi.ErrExperienceNotFound) {
			uc.logger.Warn("GetExperience: experience id=%s not found", id)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("GetExperience: failed to get experience id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	return exp, nil
}
