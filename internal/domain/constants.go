package domain

// Ключи записей в хранилище сессии
// Каждый ключ хранит не более одной записи, запись перезаписывается
const (
	SessionKeyPendingSelection = "bookingData"
	SessionKeyBookingResult    = "bookingSuccess"
)

// Каталог: размер окна выдачи и шаг "показать еще"
const (
	DefaultVisibleExperiences = 9
	VisibleExperiencesStep    = 9
	MaxVisibleExperiences     = 500
)

// BrowsingPath адрес каталога, куда перенаправляются страницы без данных сессии
const BrowsingPath = "/"

// ConfirmationPath адрес страницы подтверждения
const ConfirmationPath = "/confirmation"

// CheckoutPath адрес страницы оформления
const CheckoutPath = "/checkout"
