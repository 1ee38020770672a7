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

// CartService is the interface that wraps methods for cart operations
type CartService interface {
	// Method Items returns the cart contents in insertion order.
	Items(ctx context.Context) []models.Course
	// Method Totals derives the cart totals under the active subscription.
	Totals(ctx context.Context) models.CartTotals
	// Method Add appends the course to the cart; duplicates are no-ops.
	//
	// "courseID" parameter identifies the catalog course.
	//
	// If the course does not exist, models.ErrCourseNotFound is returned.
	Add(ctx context.Context, courseID int) error
	// Method Remove deletes the course from the cart; absent courses are no-ops.
	Remove(ctx context.Context, courseID int)
	// Method Clear empties the cart.
	Clear(ctx context.Context)
	// Method Checkout charges the final total and clears the cart on success.
	//
	// If the cart is empty, models.ErrCartEmpty is returned together with "nil".
	Checkout(ctx context.Context) (*models.CheckoutResult, error)
}

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	BaseHandler
	cart CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cart CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		BaseHandler: BaseHandler{Logger: logger},
		cart:        cart,
	}
}

// RegisterRoutes registers all cart handler routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/checkout", h.Checkout)
		r.Post("/{courseID}", h.Add)
		r.Delete("/{courseID}", h.Remove)
	})
}

// Get handles GET /cart
// @Summary Get cart
// @Description Get the cart contents and derived totals
// @Tags cart
// @Produce json
// @Success 200 {object} models.CartResponse "Cart contents"
// @Router /cart [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, models.CartResponse{
		Items:  h.cart.Items(r.Context()),
		Totals: h.cart.Totals(r.Context()),
	})
}

// Add handles POST /cart/{courseID}
// @Summary Add course to cart
// @Tags cart
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 201 {object} models.CartResponse "Updated cart"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /cart/{courseID} [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	if err := h.cart.Add(r.Context(), courseID); err != nil {
		if errors.Is(err, models.ErrCourseNotFound) {
			h.RespondError(w, http.StatusNotFound, "course not found")
			return
		}
		h.Logger.Error("failed to add course to cart", zap.Int("course_id", courseID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to add course to cart")
		return
	}

	h.RespondJSON(w, http.StatusCreated, models.CartResponse{
		Items:  h.cart.Items(r.Context()),
		Totals: h.cart.Totals(r.Context()),
	})
}

// Remove handles DELETE /cart/{courseID}
// @Summary Remove course from cart
// @Tags cart
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} models.CartResponse "Updated cart"
// @Failure 400 {object} map[string]string "Invalid course ID"
// @Router /cart/{courseID} [delete]
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid course ID")
		return
	}

	h.cart.Remove(r.Context(), courseID)

	h.RespondJSON(w, http.StatusOK, models.CartResponse{
		Items:  h.cart.Items(r.Context()),
		Totals: h.cart.Totals(r.Context()),
	})
}

// Clear handles DELETE /cart
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 204 "Cart cleared"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Checkout handles POST /cart/checkout
// @Summary Check out the cart
// @Description Charge the cart's final total through the payment collaborator; the cart is cleared on confirmed payment
// @Tags cart
// @Produce json
// @Success 200 {object} models.CheckoutResult "Checkout outcome"
// @Failure 400 {object} map[string]string "Cart is empty"
// @Failure 502 {object} map[string]string "Payment failed"
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	result, err := h.cart.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, models.ErrCartEmpty) {
			h.RespondError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		h.Logger.Error("checkout failed", zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, "payment failed")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}
