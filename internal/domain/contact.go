package domain

// ContactInfo контактные данные из формы оформления
type ContactInfo struct {
	Name      string
	Email     string
	Phone     string
	PromoCode string // опционально
}
