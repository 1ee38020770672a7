package services

import (
	"context"

	"go.uber.org/zap"
)

// discountService owns the plan-price discount unlock flag.
// The transition is one-way: once unlocked, no operation resets it.
type discountService struct {
	state  StateStore
	logger *zap.Logger
}

// NewDiscountService creates a new discount service
func NewDiscountService(state StateStore, logger *zap.Logger) *discountService {
	return &discountService{
		state:  state,
		logger: logger,
	}
}

// Unlocked reports whether the plan-price discount has been unlocked.
// Defaults to false when nothing is persisted or the read fails.
func (s *discountService) Unlocked(ctx context.Context) bool {
	var unlocked bool
	loadState(ctx, s.state, s.logger, discountStateKey, &unlocked)
	return unlocked
}

// Unlock sets and persists the discount flag. Unlocking an already unlocked
// discount is a no-op.
func (s *discountService) Unlock(ctx context.Context) {
	saveState(ctx, s.state, s.logger, discountStateKey, true)
}
