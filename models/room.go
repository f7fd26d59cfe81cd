package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
)

// RoomType is the closed set of room categories offered by the hotel.
type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

// RoomAvailability is the stored, operator-controlled tri-state.
// Derivation from reservations only ever yields available or occupied;
// maintenance is set by hand.
type RoomAvailability string

const (
	RoomAvailable   RoomAvailability = "available"
	RoomOccupied    RoomAvailability = "occupied"
	RoomMaintenance RoomAvailability = "maintenance"
)

type Room struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	Number         string           `json:"number" gorm:"uniqueIndex;size:20"`
	Type           RoomType         `json:"type" gorm:"size:20"`
	Capacity       int              `json:"capacity"`
	Price          float64          `json:"price"`
	Availability   RoomAvailability `json:"availability" gorm:"size:20;default:available"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	AllowedSpecies pq.StringArray   `json:"allowedSpecies,omitempty" gorm:"type:text[]"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updatedAt"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:RoomID"`
}

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

func (a RoomAvailability) Valid() bool {
	switch a {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

// AllowsSpecies reports whether the room accepts a species. An empty list
// means the room takes any pet.
func (r *Room) AllowsSpecies(species string) bool {
	if len(r.AllowedSpecies) == 0 {
		return true
	}
	for _, allowed := range r.AllowedSpecies {
		if strings.EqualFold(allowed, species) {
			return true
		}
	}
	return false
}

func (r *Room) ValidateAvailability() error {
	if !r.Availability.Valid() {
		return fmt.Errorf("invalid availability: %q, must be available, occupied or maintenance", r.Availability)
	}
	return nil
}
