package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mvargas/spendtrack/internal/expense"
	"github.com/mvargas/spendtrack/internal/importer"
	"github.com/mvargas/spendtrack/internal/matching"
)

// FallbackCategory is assigned to imported rows whose category cannot be
// determined from the file or the matching service.
const FallbackCategory = "Uncategorized"

type Handler struct {
	importSvc      *importer.Service
	expenseSvc     *expense.Service
	matchSvc       *matching.Service
	maxUploadBytes int64
}

func NewHandler(importSvc *importer.Service, expenseSvc *expense.Service, matchSvc *matching.Service, maxUploadBytes int64) *Handler {
	return &Handler{
		importSvc:      importSvc,
		expenseSvc:     expenseSvc,
		matchSvc:       matchSvc,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type expenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

type importResponse struct {
	Imported int               `json:"imported"`
	Expenses []expenseResponse `json:"expenses"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceStandard
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{Expenses: make([]expenseResponse, 0, len(params))}

	for _, p := range params {
		if p.Category == "" {
			suggested, err := h.matchSvc.Suggest(r.Context(), p.Description)
			if err != nil {
				slog.Error("category suggestion failed", "error", err)
			}

			p.Category = suggested
			if p.Category == "" {
				p.Category = FallbackCategory
			}
		}

		e, err := h.expenseSvc.Create(r.Context(), p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Expenses = append(resp.Expenses, expenseResponse{
			ID:          e.ID,
			Description: e.Description,
			Amount:      e.Amount,
			Category:    e.Category,
			Date:        e.Date,
			CreatedAt:   e.CreatedAt,
		})
	}

	resp.Imported = len(resp.Expenses)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
