package services

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// discountUnlockThreshold is the completion percentage at which the
// plan-price discount unlocks.
const discountUnlockThreshold = 50

// DiscountStore is the interface that wraps the discount unlock flag
type DiscountStore interface {
	// Method Unlocked reports whether the discount has been unlocked.
	Unlocked(ctx context.Context) bool
	// Method Unlock sets and persists the discount flag.
	Unlock(ctx context.Context)
}

// progressService owns the per-course completed-lesson sets. Only the course
// being operated on is loaded; other courses stay in storage.
type progressService struct {
	state     StateStore
	catalog   *catalog.Catalog
	discounts DiscountStore
	logger    *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(state StateStore, cat *catalog.Catalog, discounts DiscountStore, logger *zap.Logger) *progressService {
	return &progressService{
		state:     state,
		catalog:   cat,
		discounts: discounts,
		logger:    logger,
	}
}

// Completed returns the completed lesson IDs for the course, defaulting to empty
func (s *progressService) Completed(ctx context.Context, courseID int) []string {
	completed := []string{}
	loadState(ctx, s.state, s.logger, progressKey(courseID), &completed)
	return completed
}

// CompletionPercentage derives the rounded completion percentage for the course.
// A course with no lessons is always at 0%.
//
// Returns models.ErrCourseNotFound when the ID is absent from the catalog.
func (s *progressService) CompletionPercentage(ctx context.Context, courseID int) (int, error) {
	course, err := s.catalog.CourseByID(courseID)
	if err != nil {
		return 0, err
	}

	return completionPercentage(len(s.Completed(ctx, courseID)), catalog.TotalLessons(course)), nil
}

// Toggle flips the completion state of a lesson and persists the new set.
// The flip is free in both directions; completing is not a ratchet.
//
// When the new percentage crosses the unlock threshold and the discount is
// not yet unlocked, the discount is unlocked exactly once and the response
// signals it; later recomputations never signal again.
func (s *progressService) Toggle(ctx context.Context, courseID int, lessonID string) (*models.ToggleLessonResponse, error) {
	course, err := s.catalog.CourseByID(courseID)
	if err != nil {
		return nil, err
	}

	if !catalog.HasLesson(course, lessonID) {
		return nil, fmt.Errorf("lesson %q: %w", lessonID, models.ErrLessonNotFound)
	}

	completed := s.Completed(ctx, courseID)
	idx := slices.Index(completed, lessonID)
	nowCompleted := idx < 0
	if nowCompleted {
		completed = append(completed, lessonID)
	} else {
		completed = slices.Delete(completed, idx, idx+1)
	}
	saveState(ctx, s.state, s.logger, progressKey(courseID), completed)

	resp := &models.ToggleLessonResponse{
		LessonID:             lessonID,
		Completed:            nowCompleted,
		CompletionPercentage: completionPercentage(len(completed), catalog.TotalLessons(course)),
	}

	if resp.CompletionPercentage >= discountUnlockThreshold && !s.discounts.Unlocked(ctx) {
		s.discounts.Unlock(ctx)
		resp.DiscountUnlocked = true
		s.logger.Info("plan discount unlocked",
			zap.Int("course_id", courseID),
			zap.Int("completion", resp.CompletionPercentage),
		)
	}

	return resp, nil
}

// completionPercentage rounds the completed share to a whole percentage,
// defining 0 total lessons as 0%
func completionPercentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// progressKey builds the course-scoped storage key
func progressKey(courseID int) string {
	return fmt.Sprintf(progressStateKeyFmt, courseID)
}
