package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mvargas/spendtrack/internal/analytics"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/by-category", h.byCategory)
	r.Get("/trend/{year}", h.trend)
}

type summaryResponse struct {
	TotalExpenses        decimal.Decimal            `json:"total_expenses"`
	MonthlyExpenses      decimal.Decimal            `json:"monthly_expenses"`
	YearlyExpenses       decimal.Decimal            `json:"yearly_expenses"`
	ExpensesByCategory   map[string]decimal.Decimal `json:"expenses_by_category"`
	HighestSpendCategory string                     `json:"highest_spend_category"`
	LowestSpendCategory  string                     `json:"lowest_spend_category"`
	HighestSpendAmount   decimal.Decimal            `json:"highest_spend_amount"`
	LowestSpendAmount    decimal.Decimal            `json:"lowest_spend_amount"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalExpenses:        summary.TotalExpenses,
		MonthlyExpenses:      summary.MonthlyExpenses,
		YearlyExpenses:       summary.YearlyExpenses,
		ExpensesByCategory:   summary.ExpensesByCategory,
		HighestSpendCategory: summary.HighestSpendCategory,
		LowestSpendCategory:  summary.LowestSpendCategory,
		HighestSpendAmount:   summary.HighestSpendAmount,
		LowestSpendAmount:    summary.LowestSpendAmount,
	})
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.svc.ByCategory(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, grouped)
}

func (h *Handler) trend(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}

	trend, err := h.svc.MonthlyTrend(r.Context(), year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, trend)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
