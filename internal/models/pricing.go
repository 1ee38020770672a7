package models

// PricingPlan represents a subscription plan in the static catalog.
// Price is a string because enterprise plans carry "Contact Us" instead of a number.
type PricingPlan struct {
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	Frequency      string   `json:"frequency"`
	Features       []string `json:"features"`
	IsPopular      bool     `json:"isPopular"`
	CtaText        string   `json:"ctaText"`
	CourseDiscount float64  `json:"courseDiscount,omitempty"`
}

// ActiveSubscription represents the currently selected plan.
// CourseDiscount is a fraction in [0,1] applied to course prices.
type ActiveSubscription struct {
	PlanName       string  `json:"planName"`
	CourseDiscount float64 `json:"courseDiscount"`
}

// PlanListItem represents a plan in list responses, with the flat plan-price
// discount already derived. The plan-price discount and the per-course
// subscription discount apply to different price axes and are never combined.
type PlanListItem struct {
	PricingPlan
	NumericPrice    bool    `json:"numericPrice"`
	OriginalPrice   float64 `json:"originalPrice,omitempty"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
	DiscountApplied bool    `json:"discountApplied"`
}

// CartTotals holds the derived cart pricing under the active subscription
type CartTotals struct {
	OriginalTotal  float64 `json:"originalTotal"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalTotal     float64 `json:"finalTotal"`
}

// CartResponse represents the cart contents with derived totals
type CartResponse struct {
	Items  []Course   `json:"items"`
	Totals CartTotals `json:"totals"`
}

// CheckoutResult reports the outcome of a cart checkout
type CheckoutResult struct {
	PaymentID string     `json:"paymentId,omitempty"`
	Free      bool       `json:"free"`
	Totals    CartTotals `json:"totals"`
	Courses   int        `json:"courses"`
}

// SubscribeResult reports the outcome of a plan selection
type SubscribeResult struct {
	PlanName     string  `json:"planName"`
	Activated    bool    `json:"activated"`
	ContactSales bool    `json:"contactSales"`
	PaymentID    string  `json:"paymentId,omitempty"`
	AmountPaid   float64 `json:"amountPaid,omitempty"`
}
