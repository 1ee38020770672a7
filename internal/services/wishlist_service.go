package services

import (
	"context"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// wishlistService owns the wishlist collection, with the same ordering and
// duplicate rules as the cart but no checkout.
type wishlistService struct {
	state   StateStore
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(state StateStore, cat *catalog.Catalog, logger *zap.Logger) *wishlistService {
	return &wishlistService{
		state:   state,
		catalog: cat,
		logger:  logger,
	}
}

// Items returns the wishlist contents in insertion order, defaulting to empty
func (s *wishlistService) Items(ctx context.Context) []models.Course {
	items := []models.Course{}
	loadState(ctx, s.state, s.logger, wishlistStateKey, &items)
	return items
}

// Contains reports whether the course is already in the wishlist
func (s *wishlistService) Contains(ctx context.Context, courseID int) bool {
	return containsCourse(s.Items(ctx), courseID)
}

// Add appends the course snapshot to the wishlist; duplicates are no-ops.
//
// Returns models.ErrCourseNotFound when the ID is absent from the catalog.
func (s *wishlistService) Add(ctx context.Context, courseID int) error {
	course, err := s.catalog.CourseByID(courseID)
	if err != nil {
		return err
	}

	items := s.Items(ctx)
	if containsCourse(items, courseID) {
		return nil
	}

	items = append(items, *course)
	saveState(ctx, s.state, s.logger, wishlistStateKey, items)
	return nil
}

// Remove deletes the course from the wishlist; removing an absent course is a no-op
func (s *wishlistService) Remove(ctx context.Context, courseID int) {
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
	saveState(ctx, s.state, s.logger, wishlistStateKey, filtered)
}
