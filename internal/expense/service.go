package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	CreateExpense(ctx context.Context, params CreateParams) (*Expense, error)
	GetExpense(ctx context.Context, id int64) (*Expense, error)
	ListExpenses(ctx context.Context) ([]*Expense, error)
	UpdateExpense(ctx context.Context, id int64, params UpdateParams) (*Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Expense, error)
	ListByCategory(ctx context.Context, category string) ([]*Expense, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]*Expense, error)
	ListByYear(ctx context.Context, year int) ([]*Expense, error)
	ListRecent(ctx context.Context, limit int) ([]*Expense, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

// UpdateParams replaces every mutable field of an expense. The id and
// creation timestamp never change after creation.
type UpdateParams struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	return s.repo.CreateExpense(ctx, params)
}

func (s *Service) Get(ctx context.Context, id int64) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Expense, error) {
	return s.repo.UpdateExpense(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}

func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]*Expense, error) {
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]*Expense, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) ListByMonth(ctx context.Context, year int, month time.Month) ([]*Expense, error) {
	return s.repo.ListByMonth(ctx, year, month)
}

func (s *Service) ListByYear(ctx context.Context, year int) ([]*Expense, error) {
	return s.repo.ListByYear(ctx, year)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]*Expense, error) {
	return s.repo.ListRecent(ctx, limit)
}
