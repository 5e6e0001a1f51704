package handler

import (
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// StatsHandler serves aggregated generation statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleSummary handles GET /api/v1/stats requests.
func (h *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	subject, _ := middleware.SubjectFromContext(r.Context())
	slog.Info("stats requested", "subject", subject)

	resp, err := h.service.Summary(r.Context())
	if err != nil {
		slog.Error("reading generation stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
