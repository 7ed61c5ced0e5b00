package browse_catalog

import (
	"strings"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// filterExperiences поиск подстроки без учета регистра по названию, описанию и локации
// Пустой запрос возвращает список без изменений
func filterExperiences(items []domain.Experience, query string) []domain.Experience {
	needle := strings.ToLower(query)
	if needle == "" {
		return items
	}

	filtered := make([]domain.Experience, 0, len(items))
	for _, exp := range items {
		if matches(exp, needle) {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}

func matches(exp domain.Experience, needle string) bool {
	if strings.Contains(strings.ToLower(exp.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(exp.Description), needle) {
		return true
	}
	return exp.HasLocation() && strings.Contains(strings.ToLower(exp.Location), needle)
}
