package models

import "time"

// EmployeeStatus mirrors the backend enum: an employee is either on the
// payroll or not.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

type Employee struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name"`
	LastName   string         `json:"lastName"`
	Email      string         `json:"email" gorm:"uniqueIndex;size:120"`
	Phone      string         `json:"phone" gorm:"size:20"`
	Position   string         `json:"position" gorm:"size:60"`
	Salary     float64        `json:"salary"`
	HiringDate time.Time      `json:"hiringDate"`
	Status     EmployeeStatus `json:"status" gorm:"size:20;default:active"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s EmployeeStatus) Valid() bool {
	return s == EmployeeActive || s == EmployeeInactive
}
