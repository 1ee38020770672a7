package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchService is the interface that wraps methods for the shared search query
type SearchService interface {
	// Method Query returns the committed query string.
	Query() string
	// Method SetInput buffers raw input; it is committed after the debounce
	// window with no newer input, last write wins.
	SetInput(input string)
	// Method SetQuery commits a query immediately, bypassing the debounce.
	SetQuery(query string)
}

// searchRequest represents a search input update
type searchRequest struct {
	Query     string `json:"query"`
	Immediate bool   `json:"immediate,omitempty"`
}

// SearchHandler handles HTTP requests for the shared search query
type SearchHandler struct {
	BaseHandler
	search SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		BaseHandler: BaseHandler{Logger: logger},
		search:      search,
	}
}

// RegisterRoutes registers all search handler routes
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Route("/search", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
}

// Get handles GET /search
// @Summary Get the committed search query
// @Tags search
// @Produce json
// @Success 200 {object} map[string]string "Committed query"
// @Router /search [get]
func (h *SearchHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, map[string]string{"query": h.search.Query()})
}

// Update handles PUT /search
// @Summary Update the search query
// @Description Buffer search input for debounced commit; set immediate to commit at once
// @Tags search
// @Accept json
// @Produce json
// @Param request body searchRequest true "Search input"
// @Success 202 {object} map[string]string "Input accepted"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /search [put]
func (h *SearchHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Immediate {
		h.search.SetQuery(req.Query)
		h.RespondJSON(w, http.StatusOK, map[string]string{"query": req.Query})
		return
	}

	h.search.SetInput(req.Query)
	h.RespondJSON(w, http.StatusAccepted, map[string]string{"query": req.Query})
}
