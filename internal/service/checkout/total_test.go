package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		outcome   *domain.PromoOutcome
		want      float64
	}{
		{name: "no promo", basePrice: 1000, outcome: nil, want: 1000},
		{name: "valid discount", basePrice: 1000, outcome: &domain.PromoOutcome{Valid: true, Discount: 200}, want: 800},
		{name: "discount larger than price clamps to zero", basePrice: 1000, outcome: &domain.PromoOutcome{Valid: true, Discount: 1500}, want: 0},
		{name: "discount equal to price", basePrice: 1000, outcome: &domain.PromoOutcome{Valid: true, Discount: 1000}, want: 0},
		{name: "invalid outcome ignores discount", basePrice: 1000, outcome: &domain.PromoOutcome{Valid: false, Discount: 900}, want: 1000},
		{name: "negative discount ignored", basePrice: 1000, outcome: &domain.PromoOutcome{Valid: true, Discount: -50}, want: 1000},
		{name: "free experience", basePrice: 0, outcome: &domain.PromoOutcome{Valid: true, Discount: 100}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotal(tt.basePrice, tt.outcome))
		})
	}
}

func TestCalculateTotal_NeverNegative(t *testing.T) {
	for base := 0.0; base <= 2000; base += 250 {
		for discount := 0.0; discount <= 3000; discount += 125 {
			outcome := &domain.PromoOutcome{Valid: true, Discount: discount}
			got := CalculateTotal(base, outcome)

			want := base - discount
			if want < 0 {
				want = 0
			}
			assert.Equal(t, want, got, "base=%v discount=%v", base, discount)
		}
	}
}
