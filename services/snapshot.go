package services

import (
	"context"
	"sync"
	"time"

	"pethotel-backend/errors"
	"pethotel-backend/models"
)

// RoomUpdater is the collaborator that persists a manual availability
// change. The snapshot is only touched after it acknowledges success.
type RoomUpdater interface {
	UpdateAvailability(ctx context.Context, roomID uint, state models.RoomAvailability) error
}

// Mismatch is one advisory finding of the reconciliation sweep.
type Mismatch struct {
	RoomID     uint                    `json:"roomId"`
	RoomNumber string                  `json:"roomNumber"`
	Stored     models.RoomAvailability `json:"stored"`
	Derived    models.RoomAvailability `json:"derived"`
}

// SnapshotStore holds the last-fetched rooms and reservations and the
// server-confirmed availability per room. Room and reservation snapshots
// are replaced wholesale and independently; readers use whatever is
// current, with no transactional guarantee between the two. The original
// source ran this on a single UI event loop; a mutex is the Go rendition.
type SnapshotStore struct {
	mu      sync.Mutex
	updater RoomUpdater

	rooms        []models.Room
	reservations []models.Reservation
	original     map[uint]models.RoomAvailability

	roomTickets uint64
	resTickets  uint64
	roomApplied uint64
	resApplied  uint64
}

func NewSnapshotStore(updater RoomUpdater) *SnapshotStore {
	return &SnapshotStore{
		updater:  updater,
		original: make(map[uint]models.RoomAvailability),
	}
}

// BeginRoomFetch hands out a ticket before the fetch is issued, so a slow
// response that resolves after a newer one can be recognized and discarded.
func (s *SnapshotStore) BeginRoomFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roomTickets++
	return s.roomTickets
}

func (s *SnapshotStore) BeginReservationFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resTickets++
	return s.resTickets
}

// ReplaceRooms swaps the room snapshot wholesale and records every room's
// current availability as the server-confirmed original. A ticket older
// than the last applied one is rejected with ErrStaleSnapshot and leaves
// the snapshot untouched.
func (s *SnapshotStore) ReplaceRooms(ticket uint64, rooms []models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.roomApplied {
		return errors.ErrStaleSnapshot
	}
	s.roomApplied = ticket

	s.rooms = make([]models.Room, len(rooms))
	copy(s.rooms, rooms)

	s.original = make(map[uint]models.RoomAvailability, len(rooms))
	for _, room := range rooms {
		s.original[room.ID] = room.Availability
	}
	return nil
}

// ReplaceReservations swaps the reservation snapshot wholesale, with the
// same stale-ticket rule as ReplaceRooms.
func (s *SnapshotStore) ReplaceReservations(ticket uint64, reservations []models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket <= s.resApplied {
		return errors.ErrStaleSnapshot
	}
	s.resApplied = ticket

	s.reservations = make([]models.Reservation, len(reservations))
	copy(s.reservations, reservations)
	return nil
}

// Room returns the snapshot copy of one room.
func (s *SnapshotStore) Room(id uint) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}

// Rooms returns a copy of the current room snapshot.
func (s *SnapshotStore) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Reservations returns a copy of the current reservation snapshot.
func (s *SnapshotStore) Reservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// OriginalAvailability returns the server-confirmed availability captured
// at the last snapshot replacement or manual update.
func (s *SnapshotStore) OriginalAvailability(id uint) (models.RoomAvailability, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.original[id]
	return state, ok
}

// ApplyManualAvailability is the single path that changes a room's stored
// availability. The collaborator is asked first; if it rejects the update,
// nothing changes locally and the error is returned as-is. No retry.
func (s *SnapshotStore) ApplyManualAvailability(ctx context.Context, roomID uint, state models.RoomAvailability) error {
	if !state.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "invalid availability state", nil)
	}

	s.mu.Lock()
	idx := -1
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			idx = i
			break
		}
	}
	s.mu.Unlock()
	if idx == -1 {
		return errors.ErrRoomNotFound
	}

	// The collaborator call happens outside the lock; it may block.
	if err := s.updater.UpdateAvailability(ctx, roomID, state); err != nil {
		return errors.NewAppError(errors.ErrCodeUpdateRejected, "availability update rejected", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].Availability = state
			break
		}
	}
	s.original[roomID] = state
	return nil
}

// Mismatches runs the reconciliation sweep over the current snapshots.
// Strictly advisory: it reads, it never writes.
func (s *SnapshotStore) Mismatches(asOf time.Time) []Mismatch {
	rooms := s.Rooms()
	reservations := s.Reservations()

	var findings []Mismatch
	for _, room := range rooms {
		if HasMismatch(room, reservations, asOf) {
			findings = append(findings, Mismatch{
				RoomID:     room.ID,
				RoomNumber: room.Number,
				Stored:     room.Availability,
				Derived:    models.RoomOccupied,
			})
		}
	}
	return findings
}
