package browse_catalog

import "github.com/m04kA/SMC-StorefrontService/internal/domain"

// ListRequest модель запроса списка впечатлений
type ListRequest struct {
	Query   string // Строка поиска по названию, описанию и локации
	Visible int    // Сколько элементов показать; 0 - значение по умолчанию
}

// ListResponse окно отфильтрованного списка
type ListResponse struct {
	Items   []domain.Experience
	Total   int  // Количество элементов после фильтрации
	Visible int  // Фактический размер запрошенного окна
	HasMore bool // Есть ли элементы за пределами окна ("показать еще")
	Next    int  // Размер окна для следующего шага "показать еще"
}
