package services

import (
	"context"
	"fmt"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"github.com/mlearn/backend/internal/payment"
	"go.uber.org/zap"
)

// SubscriptionReader is the interface that wraps read access to the active subscription
type SubscriptionReader interface {
	// Method Active returns the current subscription, or nil when none is set.
	Active(ctx context.Context) *models.ActiveSubscription
	// Method CourseDiscount returns the active subscription's course discount, or 0.
	CourseDiscount(ctx context.Context) float64
}

// cartService owns the cart collection: an ordered, duplicate-free sequence
// of course snapshots persisted on every mutation.
type cartService struct {
	state         StateStore
	catalog       *catalog.Catalog
	subscriptions SubscriptionReader
	payments      payment.Gateway
	merchantName  string
	logger        *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	state StateStore,
	cat *catalog.Catalog,
	subscriptions SubscriptionReader,
	payments payment.Gateway,
	merchantName string,
	logger *zap.Logger,
) *cartService {
	return &cartService{
		state:         state,
		catalog:       cat,
		subscriptions: subscriptions,
		payments:      payments,
		merchantName:  merchantName,
		logger:        logger,
	}
}

// Items returns the cart contents in insertion order, defaulting to empty
func (s *cartService) Items(ctx context.Context) []models.Course {
	items := []models.Course{}
	loadState(ctx, s.state, s.logger, cartStateKey, &items)
	return items
}

// Contains reports whether the course is already in the cart
func (s *cartService) Contains(ctx context.Context, courseID int) bool {
	return containsCourse(s.Items(ctx), courseID)
}

// Add appends the course snapshot to the cart. Adding a course that is
// already present is a no-op, so Add is idempotent.
//
// Returns models.ErrCourseNotFound when the ID is absent from the catalog.
func (s *cartService) Add(ctx context.Context, courseID int) error {
	course, err := s.catalog.CourseByID(courseID)
	if err != nil {
		return err
	}

	items := s.Items(ctx)
	if containsCourse(items, courseID) {
		return nil
	}

	items = append(items, *course)
	saveState(ctx, s.state, s.logger, cartStateKey, items)
	return nil
}

// Remove deletes the course from the cart; removing an absent course is a no-op
func (s *cartService) Remove(ctx context.Context, courseID int) {
	items := s.Items(ctx)
	filtered := items[:0]
	for _, item := range items {
		if item.ID != courseID {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == len(items) {
		return
	}
	saveState(ctx, s.state, s.logger, cartStateKey, filtered)
}

// Clear empties the cart
func (s *cartService) Clear(ctx context.Context) {
	saveState(ctx, s.state, s.logger, cartStateKey, []models.Course{})
}

// Totals derives the cart totals under the active subscription
func (s *cartService) Totals(ctx context.Context) models.CartTotals {
	return ComputeCartTotals(s.Items(ctx), s.subscriptions.CourseDiscount(ctx))
}

// Checkout charges the cart's final total through the payment collaborator
// and clears the cart once the payment is confirmed. A final total of zero
// (everything covered by the plan) clears the cart without a charge.
//
// Returns models.ErrCartEmpty when there is nothing to check out.
func (s *cartService) Checkout(ctx context.Context) (*models.CheckoutResult, error) {
	items := s.Items(ctx)
	if len(items) == 0 {
		return nil, models.ErrCartEmpty
	}

	totals := ComputeCartTotals(items, s.subscriptions.CourseDiscount(ctx))
	result := &models.CheckoutResult{
		Totals:  totals,
		Courses: len(items),
	}

	if totals.FinalTotal <= 0 {
		result.Free = true
		s.Clear(ctx)
		return result, nil
	}

	err := s.payments.Charge(ctx, payment.Options{
		Amount:      totals.FinalTotal,
		Name:        fmt.Sprintf("%s Course Purchase", s.merchantName),
		Description: fmt.Sprintf("Payment for %d course(s).", len(items)),
		OnSuccess: func(c payment.Confirmation) {
			result.PaymentID = c.PaymentID
			s.Clear(ctx)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("checkout payment failed: %w", err)
	}

	return result, nil
}

// containsCourse reports whether a course with the given ID is in items
func containsCourse(items []models.Course, courseID int) bool {
	for _, item := range items {
		if item.ID == courseID {
			return true
		}
	}
	return false
}
