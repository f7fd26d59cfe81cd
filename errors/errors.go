package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat    ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone     ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Collaborator errors
	ErrCodeFetchFailure   ErrorCode = "FETCH_FAILURE"
	ErrCodeUpdateRejected ErrorCode = "UPDATE_REJECTED"
	ErrCodePaymentFailure ErrorCode = "PAYMENT_FAILURE"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError is the application error carrying a code, a human-readable
// message and the underlying cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Resource errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Reservation errors
	ErrReservationCanceled  = errors.New("reservation already canceled")
	ErrReservationCompleted = errors.New("reservation already completed")
	ErrInvalidDateRange     = errors.New("start date must be before end date")

	// Snapshot errors
	ErrStaleSnapshot = errors.New("snapshot superseded by a newer fetch")
)
