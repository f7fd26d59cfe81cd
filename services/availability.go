package services

import (
	"time"

	"pethotel-backend/models"
)

// The availability derivation answers one question: does any reservation
// occupy this room right now? It is pure, deterministic and advisory; the
// stored tri-state on the room is only ever changed by an operator.

// DayOf truncates a timestamp to day granularity.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayEnd is the last instant of the day containing t.
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// IsActiveNow reports whether the reservation occupies its room on asOf.
// A guest who checked in and has not checked out occupies the room
// indefinitely, even past the booked end date. Otherwise the reservation
// occupies every day from its start date through its end date inclusive,
// so a zero-night stay still blocks its single day. Completed and canceled
// reservations never occupy, whatever their dates say.
func IsActiveNow(r models.Reservation, asOf time.Time) bool {
	if !r.Status.IsActive() {
		return false
	}
	if r.CheckInDate != nil && r.CheckOutDate == nil {
		return true
	}
	day := DayOf(asOf)
	return !day.Before(DayOf(r.StartDate)) && !day.After(dayEnd(r.EndDate))
}

// DeriveAvailability reduces the reservation list to the two-valued state
// computed from overlap. It never returns maintenance; that state belongs
// to the operator alone.
func DeriveAvailability(room models.Room, reservations []models.Reservation, asOf time.Time) models.RoomAvailability {
	for _, r := range reservations {
		if r.RoomID != room.ID {
			continue
		}
		if IsActiveNow(r, asOf) {
			return models.RoomOccupied
		}
	}
	return models.RoomAvailable
}

// HasMismatch warns only when reality contradicts an optimistic "available"
// label. A stale "occupied" or a deliberate "maintenance" is the operator's
// business and reporting it would only add noise.
func HasMismatch(room models.Room, reservations []models.Reservation, asOf time.Time) bool {
	return DeriveAvailability(room, reservations, asOf) == models.RoomOccupied &&
		room.Availability == models.RoomAvailable
}
