package domain

// PendingSelection выбор пользователя до оформления бронирования
// Имя и цена денормализованы в момент выбора и повторно с каталогом не сверяются
type PendingSelection struct {
	ExperienceID   string  `json:"experienceId"`
	ExperienceName string  `json:"experienceName"`
	Price          float64 `json:"price"`
	Slot           string  `json:"slot"`
}

// SameAs returns true if both selections point to the same experience and slot
func (s PendingSelection) SameAs(other PendingSelection) bool {
	return s.ExperienceID == other.ExperienceID && s.Slot == other.Slot && s.Price == other.Price
}
