package cart

// Shipping is a flat fee waived above a fixed threshold. Both numbers are
// business constants with no configuration surface.
const (
	FreeShippingOver = 50.0
	FlatShippingFee  = 5.99
)

func shippingFor(amount float64) float64 {
	if amount > FreeShippingOver {
		return 0
	}
	return FlatShippingFee
}

type BuySummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type RentSummary struct {
	RentAmount   float64 `json:"total_rent_amount"`
	TotalDeposit float64 `json:"total_deposit"`
	Shipping     float64 `json:"shipping"`
	TotalPayment float64 `json:"total_payment"`
}

// BuySummary totals the buy ledger.
func (s *Session) BuySummary() BuySummary {
	var sub float64
	for _, l := range s.Buy {
		sub += l.UnitPrice * float64(l.Quantity)
	}
	ship := shippingFor(sub)
	return BuySummary{Subtotal: sub, Shipping: ship, Total: sub + ship}
}

// RentSummary totals the rent ledger. The shipping rule applies to the
// rental charge only; the deposit never counts toward free shipping.
func (s *Session) RentSummary() RentSummary {
	var rent, dep float64
	for _, l := range s.Rent {
		rent += l.DailyRate * float64(l.DurationDays)
		dep += l.Deposit
	}
	ship := shippingFor(rent)
	return RentSummary{
		RentAmount:   rent,
		TotalDeposit: dep,
		Shipping:     ship,
		TotalPayment: rent + dep + ship,
	}
}
