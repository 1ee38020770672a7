package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Persisted state keys. Each service owns its keys exclusively; no two
// services write the same key.
const (
	cartStateKey         = "mlearn-cart"
	wishlistStateKey     = "mlearn-wishlist"
	discountStateKey     = "mlearn-discount-unlocked"
	subscriptionStateKey = "mlearn-active-subscription"
	sessionStateKey      = "mlearn-current-user"
	accountsStateKey     = "mlearn-user-accounts"
	progressStateKeyFmt  = "course-progress-%d"
)

// StateStore is the interface that wraps methods for persistent state access
type StateStore interface {
	// Method Get retrieves the raw value stored under key.
	//
	// "key" parameter identifies the state entry.
	//
	// The boolean is false when the key is absent. If some error occurs during
	// the read, the error will be returned together with an empty string.
	Get(ctx context.Context, key string) (string, bool, error)
	// Method Set stores value under key, replacing any previous value.
	//
	// "key" parameter identifies the state entry.
	// "value" parameter is the JSON-encoded state.
	//
	// If some error occurs during the write, the error will be returned.
	Set(ctx context.Context, key, value string) error
	// Method Delete removes the value stored under key.
	//
	// "key" parameter identifies the state entry.
	//
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// loadState reads and decodes the JSON value under key into v.
// Returns false and leaves v untouched when the key is absent or the read
// fails. Storage failures are absorbed here: they are logged and the caller
// proceeds with its documented default.
func loadState(ctx context.Context, store StateStore, logger *zap.Logger, key string, v any) bool {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		logger.Error("could not load state, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Error("could not decode state, using default", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

// saveState encodes v as JSON and stores it under key.
// Failures are logged and absorbed; a failed save loses persistence for this
// call but never interrupts the operation that requested it.
func saveState(ctx context.Context, store StateStore, logger *zap.Logger, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("could not encode state", zap.String("key", key), zap.Error(err))
		return
	}

	if err := store.Set(ctx, key, string(raw)); err != nil {
		logger.Error("could not save state", zap.String("key", key), zap.Error(err))
	}
}

// removeState deletes the value under key, logging and absorbing failures
func removeState(ctx context.Context, store StateStore, logger *zap.Logger, key string) {
	if err := store.Delete(ctx, key); err != nil {
		logger.Error("could not remove state", zap.String("key", key), zap.Error(err))
	}
}
