package services

import (
	"gorm.io/gorm"

	"pethotel-backend/errors"
	"pethotel-backend/models"
)

// RefreshRoomSnapshot reloads the room snapshot from the database. On a
// fetch failure the store keeps whatever snapshot it already had.
func RefreshRoomSnapshot(db *gorm.DB, store *SnapshotStore) error {
	ticket := store.BeginRoomFetch()

	var rooms []models.Room
	if err := db.Find(&rooms).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeFetchFailure, "cannot fetch rooms", err)
	}
	return store.ReplaceRooms(ticket, rooms)
}

// RefreshReservationSnapshot reloads the reservation snapshot. Completed
// and canceled reservations are loaded too; the overlap predicate already
// ignores them, and the reports want the full list.
func RefreshReservationSnapshot(db *gorm.DB, store *SnapshotStore) error {
	ticket := store.BeginReservationFetch()

	var reservations []models.Reservation
	if err := db.Find(&reservations).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeFetchFailure, "cannot fetch reservations", err)
	}
	return store.ReplaceReservations(ticket, reservations)
}
