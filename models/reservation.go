package models

import (
	"time"
)

// ReservationStatus is the closed, ordered lifecycle of a reservation.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationInProgress ReservationStatus = "inProgress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCanceled   ReservationStatus = "canceled"
)

// IVARate is the fixed tax rate applied to every reservation subtotal.
const IVARate = 0.12

type Reservation struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	StartDate    time.Time         `json:"startDate" gorm:"index"`
	EndDate      time.Time         `json:"endDate" gorm:"index"`
	CheckInDate  *time.Time        `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time        `json:"checkOutDate,omitempty"`
	Status       ReservationStatus `json:"status" gorm:"size:20;index;default:pending"`
	Observation  string            `json:"observation,omitempty"`
	SubTotal     float64           `json:"subTotal"`
	IVA          float64           `json:"iva"`
	Total        float64           `json:"total"`
	CustomerID   uint              `json:"customerId" gorm:"index"`
	RoomID       uint              `json:"roomId" gorm:"index"`
	EmployeeID   uint              `json:"employeeId"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Room     *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationInProgress,
		ReservationCompleted, ReservationCanceled:
		return true
	}
	return false
}

// IsActive reports whether the reservation still counts toward room occupancy.
// Completed and canceled reservations never do.
func (s ReservationStatus) IsActive() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationInProgress:
		return true
	}
	return false
}
