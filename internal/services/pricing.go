package services

import "github.com/mlearn/backend/internal/models"

// planDiscountRate is the flat reduction applied to numeric plan prices once
// the unlock flag is set. It applies to plan prices only; the subscription's
// per-course discount is a separate axis and the two are never combined.
const planDiscountRate = 0.10

// DiscountedCoursePrice derives the course price under the active
// subscription's course discount
func DiscountedCoursePrice(price, courseDiscount float64) float64 {
	return price * (1 - courseDiscount)
}

// ComputeCartTotals derives the cart totals for the given items and course discount
func ComputeCartTotals(items []models.Course, courseDiscount float64) models.CartTotals {
	var original float64
	for _, item := range items {
		original += item.Price
	}

	discountAmount := original * courseDiscount

	return models.CartTotals{
		OriginalTotal:  original,
		DiscountAmount: discountAmount,
		FinalTotal:     original - discountAmount,
	}
}
