package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvargas/spendtrack/internal/matching/store"
)

func TestStore_FindMatch(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	_, err := s.CreateMapping(ctx, "uber", "Transport")
	require.NoError(t, err)

	_, err = s.CreateMapping(ctx, "uber eats", "Food")
	require.NoError(t, err)

	t.Run("longest pattern wins", func(t *testing.T) {
		category, err := s.FindMatch(ctx, "UBER EATS lisbon")
		require.NoError(t, err)
		assert.Equal(t, "Food", category)
	})

	t.Run("shorter pattern still matches alone", func(t *testing.T) {
		category, err := s.FindMatch(ctx, "Uber trip home")
		require.NoError(t, err)
		assert.Equal(t, "Transport", category)
	})

	t.Run("no match yields empty string", func(t *testing.T) {
		category, err := s.FindMatch(ctx, "pharmacy")
		require.NoError(t, err)
		assert.Empty(t, category)
	})
}

func TestStore_FindMatchPrefersMostRecentOnEqualLength(t *testing.T) {
	s := store.New()
	ctx := context.Background()

	first, err := s.CreateMapping(ctx, "cinema", "Leisure")
	require.NoError(t, err)

	second, err := s.CreateMapping(ctx, "cinema", "Culture")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	category, err := s.FindMatch(ctx, "cinema tickets")
	require.NoError(t, err)
	assert.Equal(t, "Culture", category)
}
