package domain

// PromoOutcome результат проверки промокода удаленным API
type PromoOutcome struct {
	Valid    bool
	Discount float64
	Message  string
}

// AppliedDiscount returns the discount only for a valid outcome
func (p *PromoOutcome) AppliedDiscount() float64 {
	if p == nil || !p.Valid {
		return 0
	}
	return p.Discount
}
