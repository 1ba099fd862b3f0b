package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvargas/spendtrack/internal/expense"
)

type expenseResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toResponseList(items []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(items))
	for i, e := range items {
		resp[i] = toResponse(e)
	}

	return resp
}
