package dto

import (
	"time"

	"pethotel-backend/models"
)

// CreateRoomRequest is the payload for registering a room.
type CreateRoomRequest struct {
	Number         string                  `json:"number" binding:"required"`
	Type           models.RoomType         `json:"type" binding:"required"`
	Capacity       int                     `json:"capacity" binding:"required,gt=0"`
	Price          float64                 `json:"price" binding:"gte=0"`
	Availability   models.RoomAvailability `json:"availability"`
	Description    string                  `json:"description"`
	ImageURL       string                  `json:"imageUrl"`
	AllowedSpecies []string                `json:"allowedSpecies"`
}

// UpdateRoomRequest carries a partial room update. Nil means "leave as is".
type UpdateRoomRequest struct {
	Number         *string                  `json:"number"`
	Type           *models.RoomType         `json:"type"`
	Capacity       *int                     `json:"capacity"`
	Price          *float64                 `json:"price"`
	Availability   *models.RoomAvailability `json:"availability"`
	Description    *string                  `json:"description"`
	ImageURL       *string                  `json:"imageUrl"`
	AllowedSpecies []string                 `json:"allowedSpecies"`
}

// RoomAvailabilityRequest is the explicit manual-override payload, the
// only way a stored availability changes.
type RoomAvailabilityRequest struct {
	RoomID       uint                    `json:"roomId" binding:"required"`
	Availability models.RoomAvailability `json:"availability" binding:"required"`
}

type RoomResponse struct {
	ID             uint                    `json:"id"`
	Number         string                  `json:"number"`
	Type           models.RoomType         `json:"type"`
	Capacity       int                     `json:"capacity"`
	Price          float64                 `json:"price"`
	Availability   models.RoomAvailability `json:"availability"`
	Description    string                  `json:"description,omitempty"`
	ImageURL       string                  `json:"imageUrl,omitempty"`
	AllowedSpecies []string                `json:"allowedSpecies,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

func NewRoomResponse(room models.Room) RoomResponse {
	return RoomResponse{
		ID:             room.ID,
		Number:         room.Number,
		Type:           room.Type,
		Capacity:       room.Capacity,
		Price:          room.Price,
		Availability:   room.Availability,
		Description:    room.Description,
		ImageURL:       room.ImageURL,
		AllowedSpecies: room.AllowedSpecies,
		CreatedAt:      room.CreatedAt,
		UpdatedAt:      room.UpdatedAt,
	}
}
