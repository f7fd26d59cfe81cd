package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel-backend/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(roomID uint, status models.ReservationStatus, start, end time.Time) models.Reservation {
	return models.Reservation{
		ID:        1,
		RoomID:    roomID,
		Status:    status,
		StartDate: start,
		EndDate:   end,
	}
}

func TestDeriveAvailabilityIsDeterministic(t *testing.T) {
	room := models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable}
	reservations := []models.Reservation{
		stay(101, models.ReservationConfirmed, day(2024, 3, 1), day(2024, 3, 5)),
		stay(102, models.ReservationInProgress, day(2024, 3, 1), day(2024, 3, 9)),
	}
	asOf := day(2024, 3, 3)

	first := DeriveAvailability(room, reservations, asOf)
	second := DeriveAvailability(room, reservations, asOf)

	assert.Equal(t, first, second)
	assert.Equal(t, models.RoomOccupied, first)
}

func TestFinishedReservationsNeverOccupy(t *testing.T) {
	room := models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable}
	asOf := day(2024, 3, 3)

	for _, status := range []models.ReservationStatus{models.ReservationCompleted, models.ReservationCanceled} {
		reservations := []models.Reservation{
			stay(101, status, day(2024, 3, 1), day(2024, 3, 5)),
		}
		assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, asOf),
			"status %s must not occupy", status)
		assert.False(t, HasMismatch(room, reservations, asOf))
	}
}

func TestOverstayOccupiesUntilCheckout(t *testing.T) {
	room := models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable}
	checkIn := day(2024, 3, 1)
	r := stay(101, models.ReservationInProgress, day(2024, 3, 1), day(2024, 3, 5))
	r.CheckInDate = &checkIn

	// Way past the booked end date the guest still holds the room.
	for _, asOf := range []time.Time{day(2024, 3, 3), day(2024, 3, 6), day(2024, 4, 1)} {
		assert.Equal(t, models.RoomOccupied, DeriveAvailability(room, []models.Reservation{r}, asOf))
	}

	checkOut := day(2024, 3, 7)
	r.CheckOutDate = &checkOut
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, []models.Reservation{r}, day(2024, 4, 1)))
}

func TestStayWindowIsInclusiveOnBothEnds(t *testing.T) {
	room := models.Room{ID: 101, Number: "101"}
	reservations := []models.Reservation{
		stay(101, models.ReservationConfirmed, day(2024, 3, 1), day(2024, 3, 5)),
	}

	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, day(2024, 2, 29)))
	assert.Equal(t, models.RoomOccupied, DeriveAvailability(room, reservations, day(2024, 3, 1)))
	assert.Equal(t, models.RoomOccupied, DeriveAvailability(room, reservations, day(2024, 3, 5)))
	assert.Equal(t, models.RoomOccupied, DeriveAvailability(room, reservations,
		time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)))
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, day(2024, 3, 6)))
}

func TestZeroNightStayBlocksItsSingleDay(t *testing.T) {
	room := models.Room{ID: 101, Number: "101"}
	reservations := []models.Reservation{
		stay(101, models.ReservationConfirmed, day(2024, 3, 3), day(2024, 3, 3)),
	}

	assert.Equal(t, models.RoomOccupied, DeriveAvailability(room, reservations, day(2024, 3, 3)))
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, day(2024, 3, 2)))
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, day(2024, 3, 4)))
}

func TestOtherRoomsReservationsAreIgnored(t *testing.T) {
	room := models.Room{ID: 101, Number: "101"}
	reservations := []models.Reservation{
		stay(202, models.ReservationInProgress, day(2024, 3, 1), day(2024, 3, 9)),
	}
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, reservations, day(2024, 3, 3)))
}

func TestRoomWithNoReservationsIsAvailable(t *testing.T) {
	asOf := day(2024, 3, 3)
	for _, stored := range []models.RoomAvailability{models.RoomAvailable, models.RoomOccupied, models.RoomMaintenance} {
		room := models.Room{ID: 101, Number: "101", Availability: stored}
		assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, nil, asOf))
		assert.False(t, HasMismatch(room, nil, asOf), "stored %s must not warn without reservations", stored)
	}
}

func TestHasMismatchTruthTable(t *testing.T) {
	asOf := day(2024, 3, 3)
	occupying := []models.Reservation{
		stay(101, models.ReservationConfirmed, day(2024, 3, 1), day(2024, 3, 5)),
	}

	cases := []struct {
		name         string
		stored       models.RoomAvailability
		reservations []models.Reservation
		want         bool
	}{
		{"derived occupied, stored available", models.RoomAvailable, occupying, true},
		{"derived occupied, stored occupied", models.RoomOccupied, occupying, false},
		{"derived occupied, stored maintenance", models.RoomMaintenance, occupying, false},
		{"derived available, stored available", models.RoomAvailable, nil, false},
		{"derived available, stored occupied", models.RoomOccupied, nil, false},
		{"derived available, stored maintenance", models.RoomMaintenance, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room := models.Room{ID: 101, Number: "101", Availability: tc.stored}
			assert.Equal(t, tc.want, HasMismatch(room, tc.reservations, asOf))
		})
	}
}

func TestConfirmedStayOccupiesOnlyItsWindow(t *testing.T) {
	room := models.Room{ID: 101, Number: "101", Availability: models.RoomAvailable}
	r := stay(101, models.ReservationConfirmed, day(2024, 3, 1), day(2024, 3, 5))

	require.Equal(t, models.RoomOccupied, DeriveAvailability(room, []models.Reservation{r}, day(2024, 3, 3)))

	// Past the end date with no check-in recorded the room frees up.
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, []models.Reservation{r}, day(2024, 3, 10)))

	r.Status = models.ReservationCanceled
	assert.Equal(t, models.RoomAvailable, DeriveAvailability(room, []models.Reservation{r}, day(2024, 3, 3)))
}
