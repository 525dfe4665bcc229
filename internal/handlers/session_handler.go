package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Lixing-Zhang/vape-store/internal/service"
	"github.com/Lixing-Zhang/vape-store/internal/session"
	"github.com/go-chi/chi/v5"
)

// SessionHandler handles storefront session HTTP requests
type SessionHandler struct {
	service *service.SessionService
	log     *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service *service.SessionService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

type toggleRequest struct {
	Included *bool `json:"included"`
}

type rangeRequest struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type sectionRequest struct {
	Section string `json:"section"`
}

type cartRequest struct {
	ProductID int64 `json:"productId"`
}

// CreateSession handles POST /api/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.CreateSession()
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.log.Info("session created", "session_id", view.ID)
	WriteJSON(w, http.StatusCreated, view, h.log)
}

// GetSession handles GET /api/session/{sessionId}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetSession(chi.URLParam(r, "sessionId"))
	h.respond(w, view, err)
}

// EndSession handles DELETE /api/session/{sessionId}
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionId")
	if err := h.service.EndSession(id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.log.Info("session ended", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// VisibleProducts handles GET /api/session/{sessionId}/products
func (h *SessionHandler) VisibleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.VisibleProducts(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.log)
}

// SetSection handles PUT /api/session/{sessionId}/section
func (h *SessionHandler) SetSection(w http.ResponseWriter, r *http.Request) {
	var req sectionRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.service.SetSection(chi.URLParam(r, "sessionId"), req.Section)
	h.respond(w, view, err)
}

// SetCategory handles PUT /api/session/{sessionId}/categories/{category}
func (h *SessionHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Included == nil {
		WriteError(w, http.StatusBadRequest, "Field 'included' is required", h.log)
		return
	}

	view, err := h.service.SetCategory(chi.URLParam(r, "sessionId"), chi.URLParam(r, "category"), *req.Included)
	h.respond(w, view, err)
}

// SetFlavor handles PUT /api/session/{sessionId}/flavors/{flavor}
func (h *SessionHandler) SetFlavor(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Included == nil {
		WriteError(w, http.StatusBadRequest, "Field 'included' is required", h.log)
		return
	}

	flavor, err := url.PathUnescape(chi.URLParam(r, "flavor"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid flavor", h.log)
		return
	}

	view, err := h.service.SetFlavor(chi.URLParam(r, "sessionId"), flavor, *req.Included)
	h.respond(w, view, err)
}

// SetPriceRange handles PUT /api/session/{sessionId}/price
func (h *SessionHandler) SetPriceRange(w http.ResponseWriter, r *http.Request) {
	min, max, ok := h.decodeRange(w, r)
	if !ok {
		return
	}

	view, err := h.service.SetPriceRange(chi.URLParam(r, "sessionId"), min, max)
	h.respond(w, view, err)
}

// SetNicotineRange handles PUT /api/session/{sessionId}/nicotine
func (h *SessionHandler) SetNicotineRange(w http.ResponseWriter, r *http.Request) {
	min, max, ok := h.decodeRange(w, r)
	if !ok {
		return
	}

	view, err := h.service.SetNicotineRange(chi.URLParam(r, "sessionId"), min, max)
	h.respond(w, view, err)
}

// ResetFilters handles POST /api/session/{sessionId}/reset
func (h *SessionHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ResetFilters(chi.URLParam(r, "sessionId"))
	h.respond(w, view, err)
}

// AddToCart handles POST /api/session/{sessionId}/cart
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if !h.decode(w, r, &req) {
		return
	}

	view, err := h.service.AddToCart(r.Context(), chi.URLParam(r, "sessionId"), req.ProductID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.log.Info("product added to cart", "session_id", view.ID, "product_id", req.ProductID, "cart_count", view.Filters.CartCount)
	WriteJSON(w, http.StatusOK, view, h.log)
}

func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.log.Warn("failed to decode request body", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return false
	}
	return true
}

func (h *SessionHandler) decodeRange(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	var req rangeRequest
	if !h.decode(w, r, &req) {
		return 0, 0, false
	}
	if req.Min == nil || req.Max == nil {
		WriteError(w, http.StatusBadRequest, "Fields 'min' and 'max' are required", h.log)
		return 0, 0, false
	}
	return *req.Min, *req.Max, true
}

func (h *SessionHandler) respond(w http.ResponseWriter, view session.View, err error) {
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view, h.log)
}

func (h *SessionHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		WriteError(w, http.StatusNotFound, "Session not found", h.log)
	case errors.Is(err, session.ErrTooManySessions):
		h.log.Warn("session store is full")
		WriteError(w, http.StatusServiceUnavailable, "Too many active sessions", h.log)
	case errors.Is(err, service.ErrInvalidCategory):
		WriteError(w, http.StatusBadRequest, "Invalid category", h.log)
	case errors.Is(err, service.ErrInvalidFlavor):
		WriteError(w, http.StatusBadRequest, "Invalid flavor", h.log)
	case errors.Is(err, service.ErrInvalidSection):
		WriteError(w, http.StatusBadRequest, "Invalid section", h.log)
	case errors.Is(err, service.ErrInvalidRange):
		WriteError(w, http.StatusBadRequest, "Range minimum must not exceed maximum", h.log)
	case errors.Is(err, service.ErrInvalidProduct):
		WriteError(w, http.StatusNotFound, "Product not found", h.log)
	default:
		h.log.Error("session request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
