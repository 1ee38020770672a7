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

func setupCartService(store *memStateStore, subs SubscriptionReader, gateway *mockGateway) *cartService {
	logger, _ := zap.NewDevelopment()
	if subs == nil {
		subs = &mockSubscriptionReader{}
	}
	if gateway == nil {
		gateway = &mockGateway{}
	}
	return NewCartService(store, testCatalog(), subs, gateway, "MLearn", logger)
}

func TestCartService_Items_DefaultsToEmpty(t *testing.T) {
	svc := setupCartService(newMemStateStore(), nil, nil)

	items := svc.Items(context.Background())

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartService_Items_DefaultsToEmptyOnStorageError(t *testing.T) {
	store := newMemStateStore()
	store.getErr = errors.New("connection refused")
	svc := setupCartService(store, nil, nil)

	items := svc.Items(context.Background())

	assert.Empty(t, items)
}

func TestCartService_Add(t *testing.T) {
	tests := []struct {
		name          string
		addIDs        []int
		expectedError error
		expectedItems []int
	}{
		{
			name:          "adds course snapshot",
			addIDs:        []int{1},
			expectedItems: []int{1},
		},
		{
			name:          "preserves insertion order",
			addIDs:        []int{2, 1},
			expectedItems: []int{2, 1},
		},
		{
			name:          "duplicate add is a no-op",
			addIDs:        []int{1, 1},
			expectedItems: []int{1},
		},
		{
			name:          "unknown course",
			addIDs:        []int{999},
			expectedError: models.ErrCourseNotFound,
			expectedItems: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := setupCartService(newMemStateStore(), nil, nil)

			var lastErr error
			for _, id := range tt.addIDs {
				lastErr = svc.Add(ctx, id)
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, lastErr, tt.expectedError)
			} else {
				assert.NoError(t, lastErr)
			}

			items := svc.Items(ctx)
			ids := make([]int, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.expectedItems, ids)
		})
	}
}

func TestCartService_Add_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store := newMemStateStore()

	svc := setupCartService(store, nil, nil)
	require.NoError(t, svc.Add(ctx, 1))

	// A fresh service over the same store sees the saved cart
	fresh := setupCartService(store, nil, nil)
	items := fresh.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, "UI Design Masterclass", items[0].Title)
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	svc := setupCartService(newMemStateStore(), nil, nil)
	require.NoError(t, svc.Add(ctx, 1))
	require.NoError(t, svc.Add(ctx, 2))

	svc.Remove(ctx, 1)

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
	assert.False(t, svc.Contains(ctx, 1))
}

func TestCartService_Remove_AbsentCourseIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := setupCartService(newMemStateStore(), nil, nil)
	require.NoError(t, svc.Add(ctx, 1))

	svc.Remove(ctx, 999)

	assert.Len(t, svc.Items(ctx), 1)
}

func TestCartService_RemoveRestoresPreAddState(t *testing.T) {
	ctx := context.Background()
	svc := setupCartService(newMemStateStore(), nil, nil)
	require.NoError(t, svc.Add(ctx, 2))
	before := svc.Items(ctx)

	require.NoError(t, svc.Add(ctx, 1))
	svc.Remove(ctx, 1)

	assert.Equal(t, before, svc.Items(ctx))
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()
	svc := setupCartService(newMemStateStore(), nil, nil)
	require.NoError(t, svc.Add(ctx, 1))
	require.NoError(t, svc.Add(ctx, 2))

	svc.Clear(ctx)

	assert.Empty(t, svc.Items(ctx))
}

func TestCartService_Totals(t *testing.T) {
	tests := []struct {
		name     string
		addIDs   []int
		discount float64
		expected models.CartTotals
	}{
		{
			name:     "no discount",
			addIDs:   []int{1, 2},
			expected: models.CartTotals{OriginalTotal: 150, DiscountAmount: 0, FinalTotal: 150},
		},
		{
			name:     "subscription course discount",
			addIDs:   []int{1, 2},
			discount: 0.8,
			expected: models.CartTotals{OriginalTotal: 150, DiscountAmount: 120, FinalTotal: 30},
		},
		{
			name:     "empty cart",
			expected: models.CartTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := setupCartService(newMemStateStore(), &mockSubscriptionReader{discount: tt.discount}, nil)
			for _, id := range tt.addIDs {
				require.NoError(t, svc.Add(ctx, id))
			}

			assert.Equal(t, tt.expected, svc.Totals(ctx))
		})
	}
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	svc := setupCartService(newMemStateStore(), nil, nil)

	result, err := svc.Checkout(context.Background())

	assert.ErrorIs(t, err, models.ErrCartEmpty)
	assert.Nil(t, result)
}

func TestCartService_Checkout_ChargesAndClears(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{}
	svc := setupCartService(newMemStateStore(), &mockSubscriptionReader{discount: 0.8}, gateway)
	require.NoError(t, svc.Add(ctx, 1))
	require.NoError(t, svc.Add(ctx, 2))

	result, err := svc.Checkout(ctx)

	require.NoError(t, err)
	assert.False(t, result.Free)
	assert.Equal(t, "pay_test", result.PaymentID)
	assert.Equal(t, 2, result.Courses)
	assert.Equal(t, models.CartTotals{OriginalTotal: 150, DiscountAmount: 120, FinalTotal: 30}, result.Totals)

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, 30.0, gateway.charges[0].Amount)
	assert.Equal(t, "MLearn Course Purchase", gateway.charges[0].Name)
	assert.Equal(t, "Payment for 2 course(s).", gateway.charges[0].Description)

	assert.Empty(t, svc.Items(ctx))
}

func TestCartService_Checkout_FreeWhenFullyCovered(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{}
	svc := setupCartService(newMemStateStore(), &mockSubscriptionReader{discount: 1}, gateway)
	require.NoError(t, svc.Add(ctx, 1))

	result, err := svc.Checkout(ctx)

	require.NoError(t, err)
	assert.True(t, result.Free)
	assert.Empty(t, result.PaymentID)
	assert.Empty(t, gateway.charges)
	assert.Empty(t, svc.Items(ctx))
}

func TestCartService_Checkout_PaymentFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	gateway := &mockGateway{err: errors.New("declined")}
	svc := setupCartService(newMemStateStore(), nil, gateway)
	require.NoError(t, svc.Add(ctx, 1))

	result, err := svc.Checkout(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Len(t, svc.Items(ctx), 1)
}
