package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "pethotel-backend/errors"
	"pethotel-backend/models"
)

type fakeUpdater struct {
	err   error
	calls int
}

func (f *fakeUpdater) UpdateAvailability(ctx context.Context, roomID uint, state models.RoomAvailability) error {
	f.calls++
	return f.err
}

func seededStore(t *testing.T, updater RoomUpdater, rooms ...models.Room) *SnapshotStore {
	t.Helper()
	store := NewSnapshotStore(updater)
	ticket := store.BeginRoomFetch()
	require.NoError(t, store.ReplaceRooms(ticket, rooms))
	return store
}

func TestManualAvailabilityRoundTrip(t *testing.T) {
	updater := &fakeUpdater{}
	store := seededStore(t, updater,
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	err := store.ApplyManualAvailability(context.Background(), 101, models.RoomMaintenance)
	require.NoError(t, err)
	assert.Equal(t, 1, updater.calls)

	room, ok := store.Room(101)
	require.True(t, ok)
	assert.Equal(t, models.RoomMaintenance, room.Availability)

	original, ok := store.OriginalAvailability(101)
	require.True(t, ok)
	assert.Equal(t, models.RoomMaintenance, original)
}

func TestRejectedUpdateLeavesSnapshotUntouched(t *testing.T) {
	updater := &fakeUpdater{err: stderrors.New("connection reset")}
	store := seededStore(t, updater,
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	err := store.ApplyManualAvailability(context.Background(), 101, models.RoomOccupied)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUpdateRejected, appErr.Code)

	room, ok := store.Room(101)
	require.True(t, ok)
	assert.Equal(t, models.RoomAvailable, room.Availability)

	original, _ := store.OriginalAvailability(101)
	assert.Equal(t, models.RoomAvailable, original)
}

func TestManualAvailabilityUnknownRoom(t *testing.T) {
	updater := &fakeUpdater{}
	store := seededStore(t, updater,
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	err := store.ApplyManualAvailability(context.Background(), 999, models.RoomOccupied)
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
	assert.Zero(t, updater.calls)
}

func TestManualAvailabilityInvalidState(t *testing.T) {
	updater := &fakeUpdater{}
	store := seededStore(t, updater,
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	err := store.ApplyManualAvailability(context.Background(), 101, models.RoomAvailability("broken"))
	require.Error(t, err)
	assert.Zero(t, updater.calls)
}

func TestStaleRoomFetchIsDiscarded(t *testing.T) {
	store := NewSnapshotStore(&fakeUpdater{})

	slowTicket := store.BeginRoomFetch()
	fastTicket := store.BeginRoomFetch()

	fresh := []models.Room{{ID: 1, Number: "101", Availability: models.RoomOccupied}}
	require.NoError(t, store.ReplaceRooms(fastTicket, fresh))

	stale := []models.Room{{ID: 1, Number: "101", Availability: models.RoomAvailable}}
	err := store.ReplaceRooms(slowTicket, stale)
	assert.ErrorIs(t, err, apperrors.ErrStaleSnapshot)

	room, ok := store.Room(1)
	require.True(t, ok)
	assert.Equal(t, models.RoomOccupied, room.Availability)
}

func TestStaleReservationFetchIsDiscarded(t *testing.T) {
	store := NewSnapshotStore(&fakeUpdater{})

	slowTicket := store.BeginReservationFetch()
	fastTicket := store.BeginReservationFetch()

	require.NoError(t, store.ReplaceReservations(fastTicket, []models.Reservation{{ID: 2}}))
	err := store.ReplaceReservations(slowTicket, []models.Reservation{{ID: 1}})
	assert.ErrorIs(t, err, apperrors.ErrStaleSnapshot)

	reservations := store.Reservations()
	require.Len(t, reservations, 1)
	assert.Equal(t, uint(2), reservations[0].ID)
}

func TestReplaceRoomsIsWholesale(t *testing.T) {
	store := seededStore(t, &fakeUpdater{},
		models.Room{ID: 1, Number: "101"},
		models.Room{ID: 2, Number: "102"})

	ticket := store.BeginRoomFetch()
	require.NoError(t, store.ReplaceRooms(ticket, []models.Room{{ID: 3, Number: "201"}}))

	assert.Len(t, store.Rooms(), 1)
	_, ok := store.Room(1)
	assert.False(t, ok)

	// The original-availability side table follows the replacement.
	_, ok = store.OriginalAvailability(1)
	assert.False(t, ok)
	_, ok = store.OriginalAvailability(3)
	assert.True(t, ok)
}

func TestMismatchClearsAfterManualCorrection(t *testing.T) {
	updater := &fakeUpdater{}
	store := seededStore(t, updater,
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	resTicket := store.BeginReservationFetch()
	require.NoError(t, store.ReplaceReservations(resTicket, []models.Reservation{{
		ID:        7,
		RoomID:    101,
		Status:    models.ReservationConfirmed,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}}))

	asOf := time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC)
	findings := store.Mismatches(asOf)
	require.Len(t, findings, 1)
	assert.Equal(t, uint(101), findings[0].RoomID)
	assert.Equal(t, models.RoomAvailable, findings[0].Stored)
	assert.Equal(t, models.RoomOccupied, findings[0].Derived)

	require.NoError(t, store.ApplyManualAvailability(context.Background(), 101, models.RoomOccupied))

	assert.Empty(t, store.Mismatches(asOf))
}

func TestMismatchSweepNeverWrites(t *testing.T) {
	store := seededStore(t, &fakeUpdater{},
		models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable})

	resTicket := store.BeginReservationFetch()
	require.NoError(t, store.ReplaceReservations(resTicket, []models.Reservation{{
		ID:        7,
		RoomID:    101,
		Status:    models.ReservationConfirmed,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	}}))

	asOf := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	store.Mismatches(asOf)
	store.Mismatches(asOf)

	room, _ := store.Room(101)
	assert.Equal(t, models.RoomAvailable, room.Availability)
	assert.Len(t, store.Mismatches(asOf), 1)
}
