package domain

// Experience represents a bookable offering from the catalog
type Experience struct {
	ID             string
	Name           string
	Description    string
	Price          float64 // в целых единицах валюты
	Duration       float64 // в часах
	ImageURL       string
	Location       string // пустая строка - локация не указана
	AvailableSlots []string
}

// HasSlot returns true if the slot is one of the experience's available slots
func (e *Experience) HasSlot(slot string) bool {
	for _, s := range e.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// HasLocation returns true if the experience carries a location label
func (e *Experience) HasLocation() bool {
	return e.Location != ""
}
