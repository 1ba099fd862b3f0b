package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mvargas/spendtrack/internal/export"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/csv", h.exportCSV)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	var filter *export.Filter

	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")

	if startStr != "" || endStr != "" {
		start, err := parseTimestamp(startStr)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		end, err := parseTimestamp(endStr)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		filter = &export.Filter{Start: start, End: end}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	if err := h.svc.WriteCSV(r.Context(), w, filter); err != nil {
		// Headers are already out; the truncated body is the best signal left.
		slog.Error("csv export failed", "error", err)
	}
}

func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse(time.DateOnly, s)
}
