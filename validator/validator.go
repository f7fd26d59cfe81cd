package validator

import (
	"math"
	"regexp"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"pethotel-backend/errors"
	"pethotel-backend/models"
)

var validate = validatorv10.New()

// ValidateStruct runs the binding-tag validation over any DTO.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "invalid payload", err)
	}
	return nil
}

// ValidateCustomer checks the fields of a customer record.
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	if customer.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "last name is required", nil)
	}
	if customer.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}
	if customer.Phone != "" && !isValidPhone(customer.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "invalid phone number", nil)
	}
	return nil
}

// ValidateEmployee checks the fields of an employee record.
func ValidateEmployee(employee *models.Employee) error {
	if employee.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "name is required", nil)
	}
	if employee.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(employee.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "invalid email", nil)
	}
	if employee.Salary < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "salary cannot be negative", nil)
	}
	if !employee.Status.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "status must be active or inactive", nil)
	}
	return nil
}

// ValidateRoom checks the fields of a room record.
func ValidateRoom(room *models.Room) error {
	if room.Number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room number is required", nil)
	}
	if !room.Type.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "type must be single, double or suite", nil)
	}
	if room.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "capacity must be positive", nil)
	}
	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price cannot be negative", nil)
	}
	if !room.Availability.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "availability must be available, occupied or maintenance", nil)
	}
	return nil
}

// ValidateService checks the fields of a service record.
func ValidateService(service *models.Service) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "service name is required", nil)
	}
	if service.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "price cannot be negative", nil)
	}
	if service.Duration < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "duration cannot be negative", nil)
	}
	return nil
}

// ValidateReservationDates rejects an empty or inverted stay before any of
// it reaches the availability calculator, which assumes this invariant.
func ValidateReservationDates(startDate, endDate time.Time) error {
	if !startDate.Before(endDate) {
		return errors.NewAppError(errors.ErrCodeInvalidDateRange, "start date must be before end date", errors.ErrInvalidDateRange)
	}
	return nil
}

// ValidateReservationTotals enforces the fixed-tax invariant: IVA is 12%
// of the subtotal and the total is their sum, at cent precision.
func ValidateReservationTotals(r *models.Reservation) error {
	wantIVA := math.Round(r.SubTotal*models.IVARate*100) / 100
	wantTotal := math.Round((r.SubTotal+wantIVA)*100) / 100
	if math.Abs(r.IVA-wantIVA) > 0.005 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "iva must be 12% of the subtotal", nil)
	}
	if math.Abs(r.Total-wantTotal) > 0.005 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "total must equal subtotal plus iva", nil)
	}
	return nil
}

// ValidateReservationStatus rejects values outside the closed enum.
func ValidateReservationStatus(status models.ReservationStatus) error {
	if !status.Valid() {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "unknown reservation status", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{8,10}$`)
	return phoneRegex.MatchString(phone)
}
