package checkout

import (
	"math"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

// AppliedDiscount скидка, которая реально уменьшает цену
// Учитывается только валидный результат проверки, отрицательная скидка считается нулевой
func AppliedDiscount(outcome *domain.PromoOutcome) float64 {
	return math.Max(0, outcome.AppliedDiscount())
}

// CalculateTotal итоговая цена: max(0, basePrice - applied discount)
func CalculateTotal(basePrice float64, outcome *domain.PromoOutcome) float64 {
	return math.Max(0, basePrice-AppliedDiscount(outcome))
}
