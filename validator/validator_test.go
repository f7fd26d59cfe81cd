package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pethotel-backend/errors"
	"pethotel-backend/models"
)

func TestValidateReservationDates(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateReservationDates(start, end))

	err := ValidateReservationDates(end, start)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidDateRange)

	err = ValidateReservationDates(start, start)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeInvalidDateRange, appErr.Code)
}

func TestValidateReservationTotals(t *testing.T) {
	ok := &models.Reservation{SubTotal: 525.0, IVA: 63.0, Total: 588.0}
	assert.NoError(t, ValidateReservationTotals(ok))

	wrongIVA := &models.Reservation{SubTotal: 525.0, IVA: 60.0, Total: 585.0}
	assert.Error(t, ValidateReservationTotals(wrongIVA))

	wrongTotal := &models.Reservation{SubTotal: 525.0, IVA: 63.0, Total: 600.0}
	assert.Error(t, ValidateReservationTotals(wrongTotal))
}

func TestValidateReservationStatus(t *testing.T) {
	for _, status := range []models.ReservationStatus{
		models.ReservationPending,
		models.ReservationConfirmed,
		models.ReservationInProgress,
		models.ReservationCompleted,
		models.ReservationCanceled,
	} {
		assert.NoError(t, ValidateReservationStatus(status))
	}

	assert.Error(t, ValidateReservationStatus(models.ReservationStatus("archived")))
}

func TestValidateCustomer(t *testing.T) {
	valid := &models.Customer{Name: "Ana", LastName: "Muñoz", Email: "ana@example.com", Phone: "55512345"}
	assert.NoError(t, ValidateCustomer(valid))

	noEmail := &models.Customer{Name: "Ana", LastName: "Muñoz"}
	assert.Error(t, ValidateCustomer(noEmail))

	badEmail := &models.Customer{Name: "Ana", LastName: "Muñoz", Email: "not-an-email"}
	assert.Error(t, ValidateCustomer(badEmail))

	badPhone := &models.Customer{Name: "Ana", LastName: "Muñoz", Email: "ana@example.com", Phone: "123"}
	assert.Error(t, ValidateCustomer(badPhone))
}

func TestValidateRoom(t *testing.T) {
	valid := &models.Room{Number: "101", Type: models.RoomTypeSingle, Capacity: 1, Price: 150, Availability: models.RoomAvailable}
	assert.NoError(t, ValidateRoom(valid))

	badType := &models.Room{Number: "101", Type: "penthouse", Capacity: 1, Availability: models.RoomAvailable}
	assert.Error(t, ValidateRoom(badType))

	badCapacity := &models.Room{Number: "101", Type: models.RoomTypeSingle, Capacity: 0, Availability: models.RoomAvailable}
	assert.Error(t, ValidateRoom(badCapacity))

	badAvailability := &models.Room{Number: "101", Type: models.RoomTypeSingle, Capacity: 1, Availability: "closed"}
	assert.Error(t, ValidateRoom(badAvailability))
}

func TestValidateEmployee(t *testing.T) {
	valid := &models.Employee{Name: "Luis", LastName: "Pérez", Email: "luis@example.com", Status: models.EmployeeActive}
	assert.NoError(t, ValidateEmployee(valid))

	negativeSalary := &models.Employee{Name: "Luis", Email: "luis@example.com", Salary: -1, Status: models.EmployeeActive}
	assert.Error(t, ValidateEmployee(negativeSalary))
}
