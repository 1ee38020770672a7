package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"github.com/mlearn/backend/internal/payment"
	"go.uber.org/zap"
)

// DiscountReader is the interface that wraps read access to the plan-price discount flag
type DiscountReader interface {
	// Method Unlocked reports whether the plan-price discount has been unlocked.
	Unlocked(ctx context.Context) bool
}

// subscriptionService owns the active subscription record and derives plan pricing
type subscriptionService struct {
	state        StateStore
	catalog      *catalog.Catalog
	discounts    DiscountReader
	payments     payment.Gateway
	merchantName string
	logger       *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	state StateStore,
	cat *catalog.Catalog,
	discounts DiscountReader,
	payments payment.Gateway,
	merchantName string,
	logger *zap.Logger,
) *subscriptionService {
	return &subscriptionService{
		state:        state,
		catalog:      cat,
		discounts:    discounts,
		payments:     payments,
		merchantName: merchantName,
		logger:       logger,
	}
}

// Active returns the current subscription, or nil when none is set
func (s *subscriptionService) Active(ctx context.Context) *models.ActiveSubscription {
	var sub models.ActiveSubscription
	if !loadState(ctx, s.state, s.logger, subscriptionStateKey, &sub) {
		return nil
	}
	return &sub
}

// CourseDiscount returns the active subscription's course discount, or 0
func (s *subscriptionService) CourseDiscount(ctx context.Context) float64 {
	if sub := s.Active(ctx); sub != nil {
		return sub.CourseDiscount
	}
	return 0
}

// SetActive stores the subscription derived from plan, or clears it when plan is nil
func (s *subscriptionService) SetActive(ctx context.Context, plan *models.PricingPlan) {
	if plan == nil {
		removeState(ctx, s.state, s.logger, subscriptionStateKey)
		return
	}

	sub := models.ActiveSubscription{
		PlanName:       plan.Name,
		CourseDiscount: plan.CourseDiscount,
	}
	saveState(ctx, s.state, s.logger, subscriptionStateKey, &sub)
}

// Plans returns the plan catalog with the flat plan-price discount derived
// for numeric prices when the unlock flag is set
func (s *subscriptionService) Plans(ctx context.Context) []models.PlanListItem {
	unlocked := s.discounts.Unlocked(ctx)

	plans := s.catalog.Plans()
	items := make([]models.PlanListItem, 0, len(plans))
	for _, plan := range plans {
		item := models.PlanListItem{PricingPlan: plan}
		if price, ok := numericPlanPrice(&plan); ok {
			item.NumericPrice = true
			item.OriginalPrice = price
			item.DiscountedPrice = price
			if unlocked {
				item.DiscountedPrice = price * (1 - planDiscountRate)
				item.DiscountApplied = true
			}
		}
		items = append(items, item)
	}

	return items
}

// Subscribe selects the named plan. Numeric plans are charged through the
// payment collaborator at the (possibly discounted) plan price and only
// activate on confirmed payment. Non-numeric plans either activate directly
// or defer to sales, matching their CTA.
func (s *subscriptionService) Subscribe(ctx context.Context, planName string) (*models.SubscribeResult, error) {
	plan, err := s.catalog.PlanByName(planName)
	if err != nil {
		return nil, err
	}

	result := &models.SubscribeResult{PlanName: plan.Name}

	price, ok := numericPlanPrice(plan)
	if !ok {
		if plan.CtaText == "Contact Sales" {
			result.ContactSales = true
			return result, nil
		}
		s.SetActive(ctx, plan)
		result.Activated = true
		return result, nil
	}

	if s.discounts.Unlocked(ctx) {
		price = price * (1 - planDiscountRate)
	}

	if price <= 0 {
		// Free plan, nothing to charge
		s.SetActive(ctx, plan)
		result.Activated = true
		return result, nil
	}

	err = s.payments.Charge(ctx, payment.Options{
		Amount:      price,
		Name:        fmt.Sprintf("%s - %s Plan", s.merchantName, plan.Name),
		Description: fmt.Sprintf("Subscription to the %s plan.", plan.Name),
		OnSuccess: func(c payment.Confirmation) {
			s.SetActive(ctx, plan)
			result.Activated = true
			result.PaymentID = c.PaymentID
			result.AmountPaid = price
		},
	})
	if err != nil {
		return nil, fmt.Errorf("plan payment failed: %w", err)
	}

	return result, nil
}

// Unsubscribe clears the active subscription
func (s *subscriptionService) Unsubscribe(ctx context.Context) {
	s.SetActive(ctx, nil)
}

// numericPlanPrice parses the plan price, reporting false for
// non-numeric prices such as "Contact Us"
func numericPlanPrice(plan *models.PricingPlan) (float64, bool) {
	price, err := strconv.ParseFloat(plan.Price, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
