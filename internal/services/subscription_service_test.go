package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mlearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockDiscountReader is a mock implementation of DiscountReader
type mockDiscountReader struct {
	unlocked bool
}

func (m *mockDiscountReader) Unlocked(ctx context.Context) bool {
	return m.unlocked
}

func setupSubscriptionService(store *memStateStore, unlocked bool, gateway *mockGateway) *subscriptionService {
	logger, _ := zap.NewDevelopment()
	if gateway == nil {
		gateway = &mockGateway{}
	}
	return NewSubscriptionService(store, testCatalog(), &mockDiscountReader{unlocked: unlocked}, gateway, "MLearn", logger)
}

func TestSubscriptionService_Active_DefaultsToNil(t *testing.T) {
	svc := setupSubscriptionService(newMemStateStore(), false, nil)

	assert.Nil(t, svc.Active(context.Background()))
	assert.Zero(t, svc.CourseDiscount(context.Background()))
}

func TestSubscriptionService_SetActive(t *testing.T) {
	ctx := context.Background()
	store := newMemStateStore()
	svc := setupSubscriptionService(store, false, nil)

	svc.SetActive(ctx, &models.PricingPlan{Name: "Gold", Price: "49", CourseDiscount: 0.8})

	sub := svc.Active(ctx)
	require.NotNil(t, sub)
	assert.Equal(t, "Gold", sub.PlanName)
	assert.Equal(t, 0.8, sub.CourseDiscount)
	assert.Equal(t, 0.8, svc.CourseDiscount(ctx))
}

func TestSubscriptionService_SetActive_NilClearsState(t *testing.T) {
	ctx := context.Background()
	store := newMemStateStore()
	svc := setupSubscriptionService(store, false, nil)
	svc.SetActive(ctx, &models.PricingPlan{Name: "Gold", Price: "49", CourseDiscount: 0.8})

	svc.SetActive(ctx, nil)

	assert.Nil(t, svc.Active(ctx))
	assert.Contains(t, store.deleted, "mlearn-active-subscription")
}

func TestSubscriptionService_Plans(t *testing.T) {
	tests := []struct {
		name     string
		unlocked bool
	}{
		{name: "locked prices are unchanged", unlocked: false},
		{name: "unlocked numeric prices get ten percent off", unlocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupSubscriptionService(newMemStateStore(), tt.unlocked, nil)

			plans := svc.Plans(context.Background())
			require.Len(t, plans, 4)

			byName := map[string]models.PlanListItem{}
			for _, plan := range plans {
				byName[plan.Name] = plan
			}

			gold := byName["Gold"]
			assert.True(t, gold.NumericPrice)
			assert.Equal(t, 49.0, gold.OriginalPrice)
			if tt.unlocked {
				assert.InDelta(t, 44.1, gold.DiscountedPrice, 0.0001)
				assert.True(t, gold.DiscountApplied)
			} else {
				assert.Equal(t, 49.0, gold.DiscountedPrice)
				assert.False(t, gold.DiscountApplied)
			}

			// Non-numeric prices are never discounted
			diamond := byName["Diamond"]
			assert.False(t, diamond.NumericPrice)
			assert.False(t, diamond.DiscountApplied)
			assert.Equal(t, "Contact Us", diamond.Price)
		})
	}
}

func TestSubscriptionService_Subscribe_UnknownPlan(t *testing.T) {
	svc := setupSubscriptionService(newMemStateStore(), false, nil)

	result, err := svc.Subscribe(context.Background(), "Platinum")

	assert.ErrorIs(t, err, models.ErrPlanNotFound)
	assert.Nil(t, result)
}

func TestSubscriptionService_Subscribe_ChargesAndActivates(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{}
	svc := setupSubscriptionService(newMemStateStore(), false, gateway)

	result, err := svc.Subscribe(ctx, "gold") // plan lookup is case-insensitive

	require.NoError(t, err)
	assert.True(t, result.Activated)
	assert.Equal(t, "Gold", result.PlanName)
	assert.Equal(t, "pay_test", result.PaymentID)
	assert.Equal(t, 49.0, result.AmountPaid)

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 49.0, gateway.charges[0].Amount)
	assert.Equal(t, "MLearn - Gold Plan", gateway.charges[0].Name)
	assert.Equal(t, "Subscription to the Gold plan.", gateway.charges[0].Description)

	sub := svc.Active(ctx)
	require.NotNil(t, sub)
	assert.Equal(t, 0.8, sub.CourseDiscount)
}

func TestSubscriptionService_Subscribe_UnlockedDiscountReducesCharge(t *testing.T) {
	gateway := &mockGateway{}
	svc := setupSubscriptionService(newMemStateStore(), true, gateway)

	result, err := svc.Subscribe(context.Background(), "Basic")

	require.NoError(t, err)
	assert.True(t, result.Activated)
	require.Len(t, gateway.charges, 1)
	assert.InDelta(t, 17.1, gateway.charges[0].Amount, 0.0001)
	assert.InDelta(t, 17.1, result.AmountPaid, 0.0001)
}

func TestSubscriptionService_Subscribe_FreePlanSkipsPayment(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{}
	svc := setupSubscriptionService(newMemStateStore(), false, gateway)

	result, err := svc.Subscribe(ctx, "Free")

	require.NoError(t, err)
	assert.True(t, result.Activated)
	assert.Empty(t, result.PaymentID)
	assert.Empty(t, gateway.charges)
	require.NotNil(t, svc.Active(ctx))
}

func TestSubscriptionService_Subscribe_ContactSales(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{}
	svc := setupSubscriptionService(newMemStateStore(), false, gateway)

	result, err := svc.Subscribe(ctx, "Diamond")

	require.NoError(t, err)
	assert.True(t, result.ContactSales)
	assert.False(t, result.Activated)
	assert.Empty(t, gateway.charges)
	assert.Nil(t, svc.Active(ctx))
}

func TestSubscriptionService_Subscribe_PaymentFailureLeavesNoSubscription(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{err: errors.New("declined")}
	svc := setupSubscriptionService(newMemStateStore(), false, gateway)

	result, err := svc.Subscribe(ctx, "Gold")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, svc.Active(ctx))
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	svc := setupSubscriptionService(newMemStateStore(), false, nil)
	_, err := svc.Subscribe(ctx, "Gold")
	require.NoError(t, err)

	svc.Unsubscribe(ctx)

	assert.Nil(t, svc.Active(ctx))
}
