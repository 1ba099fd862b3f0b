package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/mvargas/spendtrack/internal/expense"
)

// Filter narrows an export to expenses dated within [Start, End]. A nil
// filter exports everything.
type Filter struct {
	Start time.Time
	End   time.Time
}

// Service writes expense data as CSV for spreadsheet consumption.
type Service struct {
	expenses *expense.Service
}

func NewService(expenseSvc *expense.Service) *Service {
	return &Service{expenses: expenseSvc}
}

var header = []string{"id", "description", "amount", "category", "date", "created_at"}

// WriteCSV streams all expenses matching the filter to w, newest first.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, filter *Filter) error {
	var (
		items []*expense.Expense
		err   error
	)

	if filter != nil {
		items, err = s.expenses.ListByDateRange(ctx, filter.Start, filter.End)
	} else {
		items, err = s.expenses.List(ctx)
	}

	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range items {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			e.Amount.String(),
			e.Category,
			e.Date.Format(time.RFC3339Nano),
			e.CreatedAt.Format(time.RFC3339Nano),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing expense %d: %w", e.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
