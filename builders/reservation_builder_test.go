package builders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pethotel-backend/models"
)

func TestBuilderPricesTheStay(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	reservation := NewReservationBuilder().
		WithCustomer(7).
		WithRoom(models.Room{ID: 101, Price: 150}).
		WithEmployee(3).
		WithStay(start, end).
		WithAddons([]models.Service{{Name: "Grooming", Price: 50}}).
		WithObservation("first stay").
		Build()

	assert.Equal(t, uint(7), reservation.CustomerID)
	assert.Equal(t, uint(101), reservation.RoomID)
	assert.Equal(t, uint(3), reservation.EmployeeID)
	assert.Equal(t, models.ReservationPending, reservation.Status)
	assert.Equal(t, 500.0, reservation.SubTotal) // 3 nights * 150 + 50
	assert.Equal(t, 60.0, reservation.IVA)
	assert.Equal(t, 560.0, reservation.Total)
}

func TestBuilderWithoutAddons(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	reservation := NewReservationBuilder().
		WithRoom(models.Room{ID: 1, Price: 100}).
		WithStay(start, start.AddDate(0, 0, 1)).
		Build()

	assert.Equal(t, 100.0, reservation.SubTotal)
	assert.Equal(t, 12.0, reservation.IVA)
	assert.Equal(t, 112.0, reservation.Total)
}
