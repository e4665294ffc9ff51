package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAvailabilityCleansSlots(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", []string{"9:00 ", " ", "9:00"}))

	record, err := svc.AvailabilityForDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00"}, record.Slots)
}

func TestSetAvailabilityIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	slots := []string{"09:00", "10:00", "11:00"}
	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", slots))
	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", slots))

	record, err := svc.AvailabilityForDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, slots, record.Slots)

	records, err := svc.ListAvailability(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSetAvailabilityReplacesSlotSet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", []string{"09:00", "10:00"}))
	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", []string{"14:00"}))

	record, err := svc.AvailabilityForDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00"}, record.Slots)
}

func TestAvailabilityForUnknownDateHasEmptySlots(t *testing.T) {
	svc := newTestService(t)

	record, err := svc.AvailabilityForDate(context.Background(), "2030-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2030-01-01", record.Date)
	assert.NotNil(t, record.Slots)
	assert.Empty(t, record.Slots)
}

func TestRemoveAvailabilitySlot(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", []string{"09:00", "10:00"}))

	require.NoError(t, svc.RemoveAvailabilitySlot(ctx, "2025-06-02", " 09:00 "))
	record, err := svc.AvailabilityForDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, record.Slots)

	// Removing an absent slot is a no-op.
	require.NoError(t, svc.RemoveAvailabilitySlot(ctx, "2025-06-02", "09:00"))

	// A date with no record at all is an error.
	err = svc.RemoveAvailabilitySlot(ctx, "2025-06-05", "09:00")
	assert.IsType(t, NotFoundError{}, err)
}

func TestListAvailabilitySortedByDate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "2025-06-03", []string{"09:00"}))
	require.NoError(t, svc.SetAvailability(ctx, "2025-06-01", []string{"09:00"}))
	require.NoError(t, svc.SetAvailability(ctx, "2025-06-02", []string{"09:00"}))

	records, err := svc.ListAvailability(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2025-06-01", records[0].Date)
	assert.Equal(t, "2025-06-02", records[1].Date)
	assert.Equal(t, "2025-06-03", records[2].Date)
}
