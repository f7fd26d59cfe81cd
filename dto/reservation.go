package dto

import (
	"time"

	"pethotel-backend/models"
)

// CreateReservationRequest is the booking payload. Dates use day
// granularity; the totals are recomputed server-side and validated
// against the fixed 12% IVA.
type CreateReservationRequest struct {
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	CustomerID  uint   `json:"customerId" binding:"required"`
	RoomID      uint   `json:"roomId" binding:"required"`
	EmployeeID  uint   `json:"employeeId"`
	ServiceIDs  []uint `json:"serviceIds"`
	Observation string `json:"observation"`
}

// UpdateReservationRequest carries a partial reservation update.
type UpdateReservationRequest struct {
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	EmployeeID  *uint   `json:"employeeId"`
	Observation *string `json:"observation"`
}

// ReservationStatusRequest drives a state-machine transition.
type ReservationStatusRequest struct {
	ReservationID uint                     `json:"reservationId" binding:"required"`
	Status        models.ReservationStatus `json:"status" binding:"required"`
}

type ReservationResponse struct {
	ID           uint                     `json:"id"`
	StartDate    time.Time                `json:"startDate"`
	EndDate      time.Time                `json:"endDate"`
	CheckInDate  *time.Time               `json:"checkInDate,omitempty"`
	CheckOutDate *time.Time               `json:"checkOutDate,omitempty"`
	Status       models.ReservationStatus `json:"status"`
	Observation  string                   `json:"observation,omitempty"`
	SubTotal     float64                  `json:"subTotal"`
	IVA          float64                  `json:"iva"`
	Total        float64                  `json:"total"`
	CustomerID   uint                     `json:"customerId"`
	RoomID       uint                     `json:"roomId"`
	EmployeeID   uint                     `json:"employeeId"`
	Customer     *CustomerResponse        `json:"customer,omitempty"`
	Room         *RoomResponse            `json:"room,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

func NewReservationResponse(r models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:           r.ID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Status:       r.Status,
		Observation:  r.Observation,
		SubTotal:     r.SubTotal,
		IVA:          r.IVA,
		Total:        r.Total,
		CustomerID:   r.CustomerID,
		RoomID:       r.RoomID,
		EmployeeID:   r.EmployeeID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Customer != nil {
		customer := NewCustomerResponse(*r.Customer)
		resp.Customer = &customer
	}
	if r.Room != nil {
		room := NewRoomResponse(*r.Room)
		resp.Room = &room
	}
	return resp
}

// ReservationReport is a reporting row plus the monetary roll-up.
type ReservationReport struct {
	Reservations []ReservationResponse `json:"reservations"`
	Count        int                   `json:"count"`
	SubTotal     float64               `json:"subTotal"`
	IVA          float64               `json:"iva"`
	Total        float64               `json:"total"`
}
