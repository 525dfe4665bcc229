package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/vape-store/internal/session"
)

// statsProvider is the interface for session statistics
type statsProvider interface {
	Stats() session.Stats
}

// AdminHandler serves operator endpoints
type AdminHandler struct {
	stats statsProvider
	log   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(stats statsProvider, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		stats: stats,
		log:   log,
	}
}

// GetStats handles GET /api/admin/stats (for debugging/monitoring)
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.stats.Stats(), h.log)
}
