package services

import (
	"sync"
	"time"

	"github.com/mlearn/backend/internal/catalog"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// searchService holds the query string shared across views. Raw input is
// buffered and committed only after a quiescence window with no further
// input; a newer input discards any pending commit (last write wins).
type searchService struct {
	mu      sync.Mutex
	query   string
	pending *time.Timer

	catalog  *catalog.Catalog
	window   time.Duration
	onCommit func(query string)
	logger   *zap.Logger
}

// NewSearchService creates a new search service.
// onCommit, when non-nil, is invoked after each debounced commit of a
// non-empty query; the view layer uses it to navigate to the course list.
func NewSearchService(cat *catalog.Catalog, window time.Duration, onCommit func(string), logger *zap.Logger) *searchService {
	return &searchService{
		catalog:  cat,
		window:   window,
		onCommit: onCommit,
		logger:   logger,
	}
}

// Query returns the committed query string
func (s *searchService) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetQuery commits a query immediately, cancelling any pending debounced input
func (s *searchService) SetQuery(query string) {
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.query = query
	s.mu.Unlock()
}

// SetInput buffers raw search input. The value is committed after the
// quiescence window elapses with no newer input; superseded inputs are
// discarded.
func (s *searchService) SetInput(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.Stop()
	}

	s.pending = time.AfterFunc(s.window, func() {
		s.commit(input)
	})
}

// commit applies a debounced input as the shared query
func (s *searchService) commit(input string) {
	s.mu.Lock()
	changed := input != s.query
	if changed {
		s.query = input
	}
	s.pending = nil
	s.mu.Unlock()

	if !changed {
		return
	}

	s.logger.Debug("search query committed", zap.String("query", input))
	if input != "" && s.onCommit != nil {
		s.onCommit(input)
	}
}

// Filter returns the catalog courses matching the committed query
func (s *searchService) Filter() []models.Course {
	return s.catalog.FilterCourses(s.Query())
}
