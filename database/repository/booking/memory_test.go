package bookingRepo

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onibook/models"
)

func draft(date, slot string) models.BookingDraft {
	return models.BookingDraft{
		Technician: "oni",
		Name:       "Mai",
		Email:      "mai@example.com",
		Service:    "pedicure",
		Date:       date,
		Time:       slot,
	}
}

func TestCreateEnforcesConfirmedTripleUniqueness(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, draft("2025-06-01", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, first.Status)

	_, err = repo.Create(ctx, draft("2025-06-01", "10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// A different time on the same date is fine.
	_, err = repo.Create(ctx, draft("2025-06-01", "11:00"))
	assert.NoError(t, err)
}

func TestCreateRacesSingleWinner(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, draft("2025-06-01", "10:00"))
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, wins)
}

func TestCancelFreesTripleForRebooking(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	booking, err := repo.Create(ctx, draft("2025-06-01", "10:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, booking.ID))
	// Idempotent.
	require.NoError(t, repo.Cancel(ctx, booking.ID))
	assert.ErrorIs(t, repo.Cancel(ctx, "missing"), ErrNotFound)

	// The cancelled record no longer occupies the constraint.
	_, err = repo.FindConfirmed(ctx, "oni", "2025-06-01", "10:00")
	assert.ErrorIs(t, err, ErrNotFound)

	rebooked, err := repo.Create(ctx, draft("2025-06-01", "10:00"))
	require.NoError(t, err)
	assert.NotEqual(t, booking.ID, rebooked.ID)
}

func TestListByDateRangeBoundsAndOrder(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ctx := context.Background()

	for _, d := range []struct{ date, slot string }{
		{"2025-06-03", "09:00"},
		{"2025-06-01", "10:00"},
		{"2025-06-01", "09:00"},
		{"2025-06-05", "09:00"},
	} {
		_, err := repo.Create(ctx, draft(d.date, d.slot))
		require.NoError(t, err)
	}

	got, err := repo.ListByDateRange(ctx, "oni", models.BookingStatusConfirmed, "2025-06-01", "2025-06-03")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "09:00", got[0].Time)
	assert.Equal(t, "10:00", got[1].Time)
	assert.Equal(t, "2025-06-03", got[2].Date)

	open, err := repo.ListByDateRange(ctx, "oni", models.BookingStatusConfirmed, "", "")
	require.NoError(t, err)
	assert.Len(t, open, 4)

	cancelled, err := repo.ListByDateRange(ctx, "oni", models.BookingStatusCancelled, "", "")
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}
