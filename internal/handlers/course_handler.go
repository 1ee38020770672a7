package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course view operations
type CourseService interface {
	// Method List returns the catalog filtered by the search query.
	//
	// "search" parameter, when non-nil, overrides the shared committed query.
	//
	// Courses carry prices discounted under the active subscription.
	List(ctx context.Context, search *string) []models.CourseListItem
	// Method Detail returns the full course view with progress and pricing.
	//
	// "courseID" parameter identifies the course.
	//
	// If the course does not exist, models.ErrCourseNotFound is returned together with "nil".
	Detail(ctx context.Context, courseID int) (*models.CourseDetailResponse, error)
}

// ProgressService is the interface that wraps methods for lesson progress operations
type ProgressService interface {
	// Method Toggle flips the completion state of a lesson.
	//
	// "courseID" parameter identifies the course.
	// "lessonID" parameter identifies the curriculum position ("module-lesson").
	//
	// If the course or lesson does not exist, the matching sentinel error is
	// returned together with "nil".
	Toggle(ctx context.Context, courseID int, lessonID string) (*models.ToggleLessonResponse, error)
}

// CourseHandler handles HTTP requests for the course catalog and progress
type CourseHandler struct {
	BaseHandler
	courses  CourseService
	progress ProgressService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(courses CourseService, progress ProgressService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{Logger: logger},
		courses:     courses,
		progress:    progress,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Detail)
		r.Post("/{id}/lessons/{lessonID}/toggle", h.ToggleLesson)
	})
}

// List handles GET /courses
// @Summary List courses
// @Description Get the course catalog filtered by the shared search query or an explicit search parameter
// @Tags courses
// @Produce json
// @Param search query string false "Search by course title or instructor"
// @Success 200 {array} models.CourseListItem "List of courses"
// @Router /courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	var search *string
	if r.URL.Query().Has("search") {
		value := r.URL.Query().Get("search")
		search = &value
	}

	h.RespondJSON(w, http.StatusOK, h.courses.List(r.Context(), search))
}

// Detail handles GET /courses/{id}
// @Summary Get course details
// @Description Get a course with curriculum, progress, discounted price, and cart/wishlist membership
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseDetailResponse "Course details"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{id} [get]
func (h *CourseHandler) Detail(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	detail, err := h.courses.Detail(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			h.RespondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.Logger.Error("failed to get course detail", zap.Int("course_id", courseID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get course")
		return
	}

	h.RespondJSON(w, http.StatusOK, detail)
}

// ToggleLesson handles POST /courses/{id}/lessons/{lessonID}/toggle
// @Summary Toggle lesson completion
// @Description Flip a lesson's completion state; the response reports the new percentage and whether the plan discount was just unlocked
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Param lessonID path string true "Lesson ID (moduleIndex-lessonIndex)"
// @Success 200 {object} models.ToggleLessonResponse "Toggle outcome"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course or lesson not found"
// @Router /courses/{id}/lessons/{lessonID}/toggle [post]
func (h *CourseHandler) ToggleLesson(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}
	lessonID := chi.URLParam(r, "lessonID")

	resp, err := h.progress.Toggle(r.Context(), courseID, lessonID)
	if err != nil {
		if errors.Is(err, models.ErrCourseNotFound) || errors.Is(err, models.ErrLessonNotFound) {
			h.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.Logger.Error("failed to toggle lesson",
			zap.Int("course_id", courseID),
			zap.String("lesson_id", lessonID),
			zap.Error(err),
		)
		h.RespondError(w, http.StatusInternalServerError, "failed to toggle lesson")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}
