package memory

import (
	"context"
	"testing"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyLoad(t *testing.T) {
	s := NewStore[domain.Train]()

	got, err := s.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestStore_SaveReplacesAndKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore(domain.Booking{ID: "B001"})

	require.NoError(t, s.SaveAll(ctx, []domain.Booking{{ID: "B003"}, {ID: "B002"}}))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Booking{{ID: "B003"}, {ID: "B002"}}, got)
}

func TestStore_CopiesOnLoadAndSave(t *testing.T) {
	ctx := context.Background()
	items := []domain.Train{{ID: "T001", StandardSeatQty: 10}}
	s := NewStore[domain.Train]()
	require.NoError(t, s.SaveAll(ctx, items))

	items[0].StandardSeatQty = 1
	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	loaded[0].StandardSeatQty = 2

	again, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, again[0].StandardSeatQty)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore[domain.Staff]()

	_, err := s.LoadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.SaveAll(ctx, nil), context.Canceled)
}
