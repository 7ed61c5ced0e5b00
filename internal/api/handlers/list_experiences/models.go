package list_experiences

import (
	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	browseCatalog "github.com/m04kA/SMC-StorefrontService/internal/usecase/browse_catalog"
)

// ExperienceResponse HTTP response model
type ExperienceResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Duration       float64  `json:"duration"`
	ImageURL       string   `json:"imageUrl"`
	Location       string   `json:"location,omitempty"`
	AvailableSlots []string `json:"availableSlots"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Items   []ExperienceResponse `json:"items"`
	Total   int                  `json:"total"`
	Visible int                  `json:"visible"`
	HasMore bool                 `json:"hasMore"`
	Next    int                  `json:"next,omitempty"`
}

// FromExperience конвертирует впечатление каталога в HTTP response
func FromExperience(exp *domain.Experience) ExperienceResponse {
	slots := exp.AvailableSlots
	if slots == nil {
		slots = []string{}
	}
	return ExperienceResponse{
		ID:             exp.ID,
		Name:           exp.Name,
		Description:    exp.Description,
		Price:          exp.Price,
		Duration:       exp.Duration,
		ImageURL:       exp.ImageURL,
		Location:       exp.Location,
		AvailableSlots: slots,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *browseCatalog.ListResponse) *ListResponse {
	items := make([]ExperienceResponse, 0, len(resp.Items))
	for i := range resp.Items {
		items = append(items, FromExperience(&resp.Items[i]))
	}
	return &ListResponse{
		Items:   items,
		Total:   resp.Total,
		Visible: resp.Visible,
		HasMore: resp.HasMore,
		Next:    resp.Next,
	}
}
