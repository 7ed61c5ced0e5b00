package booking_flow

import "github.com/m04kA/SMC-StorefrontService/internal/domain"

func proceed() Guard {
	return Guard{Proceed: true}
}

func redirectToBrowsing() Guard {
	return Guard{Proceed: false, RedirectTo: StateBrowsing}
}

// CheckoutGuard без ожидающего выбора страница оформления недоступна
func CheckoutGuard(selection *domain.PendingSelection) Guard {
	if selection == nil {
		return redirectToBrowsing()
	}
	return proceed()
}

// ConfirmationGuard без результата бронирования страница подтверждения недоступна
func ConfirmationGuard(confirmation *domain.BookingConfirmation) Guard {
	if confirmation == nil {
		return redirectToBrowsing()
	}
	return proceed()
}
