package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvargas/spendtrack/internal/matching"
)

// Store keeps learned pattern-to-category mappings in memory.
type Store struct {
	mu       sync.RWMutex
	mappings []*matching.Mapping
}

func New() *Store {
	return &Store{}
}

// FindMatch returns the category of the best mapping whose pattern occurs in
// the description, case-insensitively. Longer patterns win over shorter ones;
// among equal lengths the most recently learned mapping wins.
func (s *Store) FindMatch(_ context.Context, description string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	haystack := strings.ToLower(description)

	var best *matching.Mapping

	for _, m := range s.mappings {
		if !strings.Contains(haystack, strings.ToLower(m.Pattern)) {
			continue
		}

		if best == nil ||
			len(m.Pattern) > len(best.Pattern) ||
			(len(m.Pattern) == len(best.Pattern) && !m.CreatedAt.Before(best.CreatedAt)) {
			best = m
		}
	}

	if best == nil {
		return "", nil
	}

	return best.Category, nil
}

func (s *Store) CreateMapping(_ context.Context, pattern, category string) (*matching.Mapping, error) {
	m := &matching.Mapping{
		ID:        uuid.New(),
		Pattern:   pattern,
		Category:  category,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.mappings = append(s.mappings, m)
	s.mu.Unlock()

	c := *m

	return &c, nil
}
