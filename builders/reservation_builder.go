package builders

import (
	"time"

	"pethotel-backend/models"
	"pethotel-backend/services"
)

// ReservationBuilder assembles a booking step by step and prices it once
// everything is known, so the totals invariant holds by construction.
type ReservationBuilder struct {
	reservation *models.Reservation
	room        models.Room
	addons      []models.Service
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{Status: models.ReservationPending},
	}
}

// WithCustomer sets the booking customer.
func (b *ReservationBuilder) WithCustomer(customerID uint) *ReservationBuilder {
	b.reservation.CustomerID = customerID
	return b
}

// WithRoom sets the room whose nightly rate prices the stay.
func (b *ReservationBuilder) WithRoom(room models.Room) *ReservationBuilder {
	b.room = room
	b.reservation.RoomID = room.ID
	return b
}

// WithEmployee sets the employee handling the booking.
func (b *ReservationBuilder) WithEmployee(employeeID uint) *ReservationBuilder {
	b.reservation.EmployeeID = employeeID
	return b
}

// WithStay sets the booked date window.
func (b *ReservationBuilder) WithStay(startDate, endDate time.Time) *ReservationBuilder {
	b.reservation.StartDate = startDate
	b.reservation.EndDate = endDate
	return b
}

// WithAddons sets the add-on services billed with the stay.
func (b *ReservationBuilder) WithAddons(addons []models.Service) *ReservationBuilder {
	b.addons = addons
	return b
}

// WithObservation sets the free-text note.
func (b *ReservationBuilder) WithObservation(observation string) *ReservationBuilder {
	b.reservation.Observation = observation
	return b
}

// Build prices the stay and returns the finished reservation.
func (b *ReservationBuilder) Build() *models.Reservation {
	b.reservation.SubTotal = services.Subtotal(b.room, b.reservation.StartDate, b.reservation.EndDate, b.addons)
	b.reservation.IVA, b.reservation.Total = services.ComputeTotals(b.reservation.SubTotal)
	return b.reservation
}
