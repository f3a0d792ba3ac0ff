package ident

import (
	"testing"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingIDs(ids ...string) []domain.Booking {
	res := make([]domain.Booking, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.Booking{ID: id})
	}
	return res
}

func TestNext_AfterMaximum(t *testing.T) {
	id, err := Next(BookingPrefix, bookingIDs("B001", "B005"), domain.Booking.GetID)

	require.NoError(t, err)
	assert.Equal(t, "B006", id)
}

func TestNext_EmptyCollection(t *testing.T) {
	id, err := Next(BookingPrefix, bookingIDs(), domain.Booking.GetID)

	require.NoError(t, err)
	assert.Equal(t, "B001", id)
}

func TestNext_UnorderedInput(t *testing.T) {
	id, err := Next(TrainPrefix, []domain.Train{{ID: "T007"}, {ID: "T002"}}, domain.Train.GetID)

	require.NoError(t, err)
	assert.Equal(t, "T008", id)
}

func TestNext_SkipsUnparseable(t *testing.T) {
	id, err := Next(BookingPrefix, bookingIDs("B002", "Bxyz", "", "T009", "B-10"), domain.Booking.GetID)

	require.NoError(t, err)
	assert.Equal(t, "B003", id)
}

func TestNext_Deterministic(t *testing.T) {
	items := bookingIDs("B010", "B003")

	first, err := Next(BookingPrefix, items, domain.Booking.GetID)
	require.NoError(t, err)
	second, err := Next(BookingPrefix, items, domain.Booking.GetID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNext_ReusesDeletedMaximum(t *testing.T) {
	id, err := Next(BookingPrefix, bookingIDs("B001", "B002"), domain.Booking.GetID)

	require.NoError(t, err)
	assert.Equal(t, "B003", id)
}

func TestNext_Exhausted(t *testing.T) {
	_, err := Next(StaffPrefix, []domain.Staff{{ID: "S999"}}, domain.Staff.GetID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIdentifierExhausted)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(TrainPrefix, "T001"))
	assert.False(t, Valid(TrainPrefix, "T01"))
	assert.False(t, Valid(TrainPrefix, "T0001"))
	assert.False(t, Valid(TrainPrefix, "B001"))
	assert.False(t, Valid(TrainPrefix, "T0a1"))
}
