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

// WishlistService is the interface that wraps methods for wishlist operations
type WishlistService interface {
	// Method Items returns the wishlist contents in insertion order.
	Items(ctx context.Context) []models.Course
	// Method Add appends the course to the wishlist; duplicates are no-ops.
	//
	// "courseID" parameter identifies the catalog course.
	//
	// If the course does not exist, models.ErrCourseNotFound is returned.
	Add(ctx context.Context, courseID int) error
	// Method Remove deletes the course from the wishlist; absent courses are no-ops.
	Remove(ctx context.Context, courseID int)
}

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	BaseHandler
	wishlist WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlist WishlistService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		BaseHandler: BaseHandler{Logger: logger},
		wishlist:    wishlist,
	}
}

// RegisterRoutes registers all wishlist handler routes
func (h *WishlistHandler) RegisterRoutes(r chi.Router) {
	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/{courseID}", h.Add)
		r.Delete("/{courseID}", h.Remove)
	})
}

// Get handles GET /wishlist
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {array} models.Course "Wishlist contents"
// @Router /wishlist [get]
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.wishlist.Items(r.Context()))
}

// Add handles POST /wishlist/{courseID}
// @Summary Add course to wishlist
// @Tags wishlist
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 201 {array} models.Course "Updated wishlist"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /wishlist/{courseID} [post]
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	if err := h.wishlist.Add(r.Context(), courseID); err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			h.RespondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.Logger.Error("failed to add course to wishlist", zap.Int("course_id", courseID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to add course to wishlist")
		return
	}

	h.RespondJSON(w, http.StatusCreated, h.wishlist.Items(r.Context()))
}

// Remove handles DELETE /wishlist/{courseID}
// @Summary Remove course from wishlist
// @Tags wishlist
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {array} models.Course "Updated wishlist"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Router /wishlist/{courseID} [delete]
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	h.wishlist.Remove(r.Context(), courseID)
	h.RespondJSON(w, http.StatusOK, h.wishlist.Items(r.Context()))
}
