package domain

// FinalPrice computes what the customer actually pays. Regular customers
// get base * (1 - discount/100); occasional customers pay the base price.
// The discount is not clamped, so values outside [0,100] pass through and
// produce negative or inflated totals.
func FinalPrice(base float64, c Customer) float64 {
	if c.Kind == Regular {
		return base * (1 - c.DiscountPercent/100)
	}
	return base
}
