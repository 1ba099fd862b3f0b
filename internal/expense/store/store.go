// Package store provides the in-memory expense repository. State lives for
// the lifetime of the process; ids are never reused, even after deletion.
package store

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mvargas/spendtrack/internal/expense"
)

type Store struct {
	mu     sync.RWMutex
	nextID atomic.Int64
	items  map[int64]*expense.Expense
}

func New() *Store {
	return &Store{items: make(map[int64]*expense.Expense)}
}

// clone returns an independent copy so callers can never mutate stored state
// without going through UpdateExpense.
func clone(e *expense.Expense) *expense.Expense {
	c := *e
	return &c
}

func (s *Store) CreateExpense(_ context.Context, params expense.CreateParams) (*expense.Expense, error) {
	now := time.Now()
	e := &expense.Expense{
		ID:          s.nextID.Add(1),
		Description: params.Description,
		Amount:      params.Amount,
		Category:    params.Category,
		Date:        params.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.items[e.ID] = e
	s.mu.Unlock()

	return clone(e), nil
}

func (s *Store) GetExpense(_ context.Context, id int64) (*expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return nil, expense.ErrNotFound
	}

	return clone(e), nil
}

func (s *Store) ListExpenses(_ context.Context) ([]*expense.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*expense.Expense, 0, len(s.items))
	for _, e := range s.items {
		out = append(out, clone(e))
	}

	return out, nil
}

func (s *Store) UpdateExpense(_ context.Context, id int64, params expense.UpdateParams) (*expense.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, expense.ErrNotFound
	}

	e.Description = params.Description
	e.Amount = params.Amount
	e.Category = params.Category
	e.Date = params.Date
	e.UpdatedAt = time.Now()

	return clone(e), nil
}

func (s *Store) DeleteExpense(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return expense.ErrNotFound
	}

	delete(s.items, id)

	return nil
}

// ListByDateRange returns expenses dated within [start, end]. Both boundaries
// are inclusive: an expense dated exactly at start or end matches.
func (s *Store) ListByDateRange(_ context.Context, start, end time.Time) ([]*expense.Expense, error) {
	return s.filter(func(e *expense.Expense) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	}), nil
}

func (s *Store) ListByCategory(_ context.Context, category string) ([]*expense.Expense, error) {
	return s.filter(func(e *expense.Expense) bool {
		return e.Category == category
	}), nil
}

func (s *Store) ListByMonth(_ context.Context, year int, month time.Month) ([]*expense.Expense, error) {
	out := s.filter(func(e *expense.Expense) bool {
		return e.Date.Year() == year && e.Date.Month() == month
	})
	sortByDateAsc(out)

	return out, nil
}

func (s *Store) ListByYear(_ context.Context, year int) ([]*expense.Expense, error) {
	out := s.filter(func(e *expense.Expense) bool {
		return e.Date.Year() == year
	})
	sortByDateAsc(out)

	return out, nil
}

// ListRecent returns the limit most recently dated expenses, newest first.
// A non-positive limit yields an empty result.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*expense.Expense, error) {
	if limit <= 0 {
		return []*expense.Expense{}, nil
	}

	out, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Store) filter(keep func(*expense.Expense) bool) []*expense.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*expense.Expense, 0)
	for _, e := range s.items {
		if keep(e) {
			out = append(out, clone(e))
		}
	}

	return out
}

func sortByDateAsc(items []*expense.Expense) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}
