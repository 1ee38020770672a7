package services

import (
	"context"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
)

// QueryReader is the interface that wraps read access to the shared search query
type QueryReader interface {
	// Method Query returns the committed query string.
	Query() string
}

// ProgressReader is the interface that wraps read access to course progress
type ProgressReader interface {
	// Method Completed returns the completed lesson IDs for the course.
	Completed(ctx context.Context, courseID int) []string
}

// CollectionReader is the interface that wraps membership checks on a course collection
type CollectionReader interface {
	// Method Contains reports whether the course is in the collection.
	Contains(ctx context.Context, courseID int) bool
}

// courseService builds course view models from the catalog and the other stores
type courseService struct {
	catalog       *catalog.Catalog
	search        QueryReader
	subscriptions SubscriptionReader
	progress      ProgressReader
	cart          CollectionReader
	wishlist      CollectionReader
}

// NewCourseService creates a new course service
func NewCourseService(
	cat *catalog.Catalog,
	search QueryReader,
	subscriptions SubscriptionReader,
	progress ProgressReader,
	cart CollectionReader,
	wishlist CollectionReader,
) *courseService {
	return &courseService{
		catalog:       cat,
		search:        search,
		subscriptions: subscriptions,
		progress:      progress,
		cart:          cart,
		wishlist:      wishlist,
	}
}

// List returns the catalog filtered by the search query, with discounted
// prices derived from the active subscription. A non-nil search overrides
// the shared committed query for this call.
func (s *courseService) List(ctx context.Context, search *string) []models.CourseListItem {
	query := s.search.Query()
	if search != nil {
		query = *search
	}

	discount := s.subscriptions.CourseDiscount(ctx)

	courses := s.catalog.FilterCourses(query)
	items := make([]models.CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, models.CourseListItem{
			ID:              course.ID,
			Title:           course.Title,
			Instructor:      course.Instructor,
			ImageURL:        course.ImageURL,
			Price:           course.Price,
			DiscountedPrice: DiscountedCoursePrice(course.Price, discount),
		})
	}

	return items
}

// Detail returns the full course view: curriculum, progress, pricing, and
// cart/wishlist membership.
//
// Returns models.ErrCourseNotFound when the ID is absent from the catalog.
func (s *courseService) Detail(ctx context.Context, courseID int) (*models.CourseDetailResponse, error) {
	course, err := s.catalog.CourseByID(courseID)
	if err != nil {
		return nil, err
	}

	completed := s.progress.Completed(ctx, courseID)
	total := catalog.TotalLessons(course)

	return &models.CourseDetailResponse{
		Course:               *course,
		TotalLessons:         total,
		CompletedLessons:     completed,
		CompletionPercentage: completionPercentage(len(completed), total),
		DiscountedPrice:      DiscountedCoursePrice(course.Price, s.subscriptions.CourseDiscount(ctx)),
		InCart:               s.cart.Contains(ctx, courseID),
		InWishlist:           s.wishlist.Contains(ctx, courseID),
	}, nil
}
