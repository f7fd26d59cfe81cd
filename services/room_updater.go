package services

import (
	"context"

	"gorm.io/gorm"

	"pethotel-backend/models"
)

// GormRoomUpdater persists manual availability changes through the
// database, satisfying the RoomUpdater contract of the snapshot store.
type GormRoomUpdater struct {
	db *gorm.DB
}

func NewGormRoomUpdater(db *gorm.DB) *GormRoomUpdater {
	return &GormRoomUpdater{db: db}
}

func (u *GormRoomUpdater) UpdateAvailability(ctx context.Context, roomID uint, state models.RoomAvailability) error {
	result := u.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("availability", state)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
