// Package analytics computes derived views over the expense collection:
// summary statistics, category groupings, monthly trends and sorted listings.
// Every operation works on a point-in-time snapshot of the store; writes that
// land mid-computation are picked up by the next call.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvargas/spendtrack/internal/expense"
)

// NoCategory is the sentinel reported by Summary when the store is empty.
const NoCategory = "None"

type Service struct {
	expenses *expense.Service
}

func NewService(expenseSvc *expense.Service) *Service {
	return &Service{expenses: expenseSvc}
}

// Summary aggregates the full expense set as of the moment of the call.
type Summary struct {
	TotalExpenses        decimal.Decimal
	MonthlyExpenses      decimal.Decimal
	YearlyExpenses       decimal.Decimal
	ExpensesByCategory   map[string]decimal.Decimal
	HighestSpendCategory string
	LowestSpendCategory  string
	HighestSpendAmount   decimal.Decimal
	LowestSpendAmount    decimal.Decimal
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	all, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	now := time.Now()

	monthly, err := s.expenses.ListByMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return nil, fmt.Errorf("listing current month: %w", err)
	}

	yearly, err := s.expenses.ListByYear(ctx, now.Year())
	if err != nil {
		return nil, fmt.Errorf("listing current year: %w", err)
	}

	byCategory := groupByCategory(all)

	summary := &Summary{
		TotalExpenses:        sumAmounts(all),
		MonthlyExpenses:      sumAmounts(monthly),
		YearlyExpenses:       sumAmounts(yearly),
		ExpensesByCategory:   byCategory,
		HighestSpendCategory: NoCategory,
		LowestSpendCategory:  NoCategory,
	}

	// Iterate categories in lexicographic order so that ties always resolve
	// to the smallest category name.
	for i, category := range sortedKeys(byCategory) {
		total := byCategory[category]

		if i == 0 || total.GreaterThan(summary.HighestSpendAmount) {
			summary.HighestSpendCategory = category
			summary.HighestSpendAmount = total
		}

		if i == 0 || total.LessThan(summary.LowestSpendAmount) {
			summary.LowestSpendCategory = category
			summary.LowestSpendAmount = total
		}
	}

	return summary, nil
}

// ByCategory returns the summed amount per category.
func (s *Service) ByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	all, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return groupByCategory(all), nil
}

// MonthTotal is one entry of a yearly trend.
type MonthTotal struct {
	Month time.Month
	Total decimal.Decimal
}

// Trend holds twelve per-month totals in calendar order, January first.
type Trend []MonthTotal

// MarshalJSON renders the trend as a JSON object whose keys stay in calendar
// order, matching the in-memory ordering.
func (t Trend) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, mt := range t {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(mt.Month.String())
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(mt.Total)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MonthlyTrend sums expenses per calendar month of the given year. All twelve
// months are always present, zero-valued when no expense falls in them.
func (s *Service) MonthlyTrend(ctx context.Context, year int) (Trend, error) {
	yearly, err := s.expenses.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("listing year %d: %w", year, err)
	}

	trend := make(Trend, 12)
	for m := time.January; m <= time.December; m++ {
		trend[m-1] = MonthTotal{Month: m}
	}

	for _, e := range yearly {
		m := e.Date.Month()
		trend[m-1].Total = trend[m-1].Total.Add(e.Amount)
	}

	return trend, nil
}

// SortField selects the comparison key for SortedBy.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

// ParseSortField maps a user-supplied value to a SortField. Unrecognized
// values fall back to date ordering rather than failing.
func ParseSortField(s string) SortField {
	switch SortField(strings.ToLower(s)) {
	case SortByAmount:
		return SortByAmount
	case SortByCategory:
		return SortByCategory
	default:
		return SortByDate
	}
}

// SortedBy returns all expenses ordered by the given field. The sort is
// stable; descending order is the ascending order reversed, so equal keys
// appear in reverse of their ascending positions.
func (s *Service) SortedBy(ctx context.Context, field SortField, ascending bool) ([]*expense.Expense, error) {
	all, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	var less func(a, b *expense.Expense) bool

	switch field {
	case SortByAmount:
		less = func(a, b *expense.Expense) bool { return a.Amount.LessThan(b.Amount) }
	case SortByCategory:
		less = func(a, b *expense.Expense) bool { return a.Category < b.Category }
	default:
		less = func(a, b *expense.Expense) bool { return a.Date.Before(b.Date) }
	}

	sort.SliceStable(all, func(i, j int) bool {
		return less(all[i], all[j])
	})

	if !ascending {
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}
	}

	return all, nil
}

func sumAmounts(items []*expense.Expense) decimal.Decimal {
	var total decimal.Decimal
	for _, e := range items {
		total = total.Add(e.Amount)
	}

	return total
}

func groupByCategory(items []*expense.Expense) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal)
	for _, e := range items {
		grouped[e.Category] = grouped[e.Category].Add(e.Amount)
	}

	return grouped
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
