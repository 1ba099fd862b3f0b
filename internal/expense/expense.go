package expense

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no expense exists for the requested id.
var ErrNotFound = errors.New("expense not found")

// Expense represents a single recorded expense.
type Expense struct {
	ID          int64
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
