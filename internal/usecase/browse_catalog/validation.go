package browse_catalog

import (
	"fmt"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// normalizeVisible приводит размер окна к допустимому значению
func normalizeVisible(visible int) (int, error) {
	if visible < 0 {
		return 0, fmt.Errorf("%w: visible must not be negative", ErrInvalidInput)
	}
	if visible == 0 {
		return domain.DefaultVisibleExperiences, nil
	}
	if visible > domain.MaxVisibleExperiences {
		return domain.MaxVisibleExperiences, nil
	}
	return visible, nil
}
