package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mlearn/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication operations
type AuthService interface {
	// Method Signup creates a new account and establishes the session.
	//
	// "email" and "password" parameters are the new account credentials.
	//
	// If an account with this email already exists, models.ErrAccountExists
	// is returned together with "nil".
	Signup(ctx context.Context, email, password string) (*models.User, error)
	// Method Login verifies credentials and establishes the session.
	//
	// "email" and "password" parameters are the account credentials.
	//
	// On unknown email or password mismatch, models.ErrInvalidCredentials
	// is returned together with "nil".
	Login(ctx context.Context, email, password string) (*models.User, error)
	// Method Logout clears the session record, leaving accounts intact.
	Logout(ctx context.Context)
	// Method Current returns the session user, or nil when nobody is logged in.
	Current(ctx context.Context) *models.User
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	auth AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		auth:        auth,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}

// Signup handles POST /auth/signup
// @Summary Sign up
// @Description Create an account and establish the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AuthRequest true "Credentials"
// @Success 201 {object} models.User "Session user"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Account already exists"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrAccountExists) {
			h.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		h.Logger.Warn("signup rejected", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify credentials and establish the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.AuthRequest true "Credentials"
// @Success 200 {object} models.User "Session user"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.RespondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Clear the session record; accounts are left intact
// @Tags auth
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me
// @Summary Get the session user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Session user"
// @Failure 401 {object} map[string]string "Not logged in"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.auth.Current(r.Context())
	if user == nil {
		h.RespondError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}
