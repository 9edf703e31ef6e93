package domain

// DepositPolicy governs how much of the total must be paid upfront.
// Min/Max of 0 mean unbounded on that side; nil Percent means the default percent.
type DepositPolicy struct {
	Percent *float64
	Min     int64
	Max     int64
}

// PricingBreakdown is the fully derived price of a draft
type PricingBreakdown struct {
	SessionCount    int
	Subtotal        int64
	DiscountPercent float64
	DiscountAmount  int64
	Total           int64
	DepositAmount   int64
	RemainingAmount int64
}
