package matching

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mapping links a description pattern to the category it should suggest.
type Mapping struct {
	ID        uuid.UUID
	Pattern   string
	Category  string
	CreatedAt time.Time
}

type Repository interface {
	FindMatch(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) (*Mapping, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given expense description.
// Returns empty string if no pattern matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindMatch(ctx, description)
}

// Learn remembers a new mapping between a description pattern and a category.
func (s *Service) Learn(ctx context.Context, pattern, category string) (*Mapping, error) {
	return s.repo.CreateMapping(ctx, pattern, category)
}
