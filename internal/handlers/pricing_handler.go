package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// SubscriptionService is the interface that wraps methods for plan and subscription operations
type SubscriptionService interface {
	// Method Plans returns the plan catalog with derived plan-price discounts.
	Plans(ctx context.Context) []models.PlanListItem
	// Method Active returns the current subscription, or nil when none is set.
	Active(ctx context.Context) *models.ActiveSubscription
	// Method Subscribe selects the named plan, charging numeric plans through
	// the payment collaborator.
	//
	// "planName" parameter identifies the pricing plan, case-insensitively.
	//
	// If the plan does not exist, models.ErrPlanNotFound is returned together with "nil".
	Subscribe(ctx context.Context, planName string) (*models.SubscribeResult, error)
	// Method Unsubscribe clears the active subscription.
	Unsubscribe(ctx context.Context)
}

// PricingHandler handles HTTP requests for pricing plans and the subscription
type PricingHandler struct {
	BaseHandler
	subscriptions SubscriptionService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(subscriptions SubscriptionService, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		subscriptions: subscriptions,
	}
}

// RegisterRoutes registers all pricing handler routes
func (h *PricingHandler) RegisterRoutes(r chi.Router) {
	r.Get("/plans", h.Plans)
	r.Post("/plans/{name}/subscribe", h.Subscribe)
	r.Route("/subscription", func(r chi.Router) {
		r.Get("/", h.Subscription)
		r.Delete("/", h.Unsubscribe)
	})
}

// Plans handles GET /plans
// @Summary List pricing plans
// @Description Get the plan catalog; numeric prices carry the flat plan discount once unlocked
// @Tags pricing
// @Produce json
// @Success 200 {array} models.PlanListItem "List of plans"
// @Router /plans [get]
func (h *PricingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.subscriptions.Plans(r.Context()))
}

// Subscription handles GET /subscription
// @Summary Get active subscription
// @Tags pricing
// @Produce json
// @Success 200 {object} models.ActiveSubscription "Active subscription, or null"
// @Router /subscription [get]
func (h *PricingHandler) Subscription(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.subscriptions.Active(r.Context()))
}

// Subscribe handles POST /plans/{name}/subscribe
// @Summary Subscribe to a plan
// @Description Select a plan; numeric plans are charged at the (possibly discounted) plan price and activate on confirmed payment
// @Tags pricing
// @Produce json
// @Param name path string true "Plan name"
// @Success 200 {object} models.SubscribeResult "Subscription outcome"
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 502 {object} map[string]string "Payment failed"
// @Router /plans/{name}/subscribe [post]
func (h *PricingHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	planName := chi.URLParam(r, "name")

	result, err := h.subscriptions.Subscribe(r.Context(), planName)
	if err != nil {
		if errors.Is(err, models.ErrPlanNotFound) {
			h.RespondError(w, http.StatusNotFound, "plan not found")
			return
		}
		h.Logger.Error("failed to subscribe", zap.String("plan", planName), zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, "payment failed")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// Unsubscribe handles DELETE /subscription
// @Summary Clear the active subscription
// @Tags pricing
// @Success 204 "Subscription cleared"
// @Router /subscription [delete]
func (h *PricingHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.subscriptions.Unsubscribe(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
