package dto

import (
	"time"

	"pethotel-backend/models"
)

type CreateEmployeeRequest struct {
	Name       string                `json:"name" binding:"required"`
	LastName   string                `json:"lastName" binding:"required"`
	Email      string                `json:"email" binding:"required,email"`
	Phone      string                `json:"phone"`
	Position   string                `json:"position"`
	Salary     float64               `json:"salary" binding:"gte=0"`
	HiringDate string                `json:"hiringDate"`
	Status     models.EmployeeStatus `json:"status"`
}

type UpdateEmployeeRequest struct {
	Name     *string                `json:"name"`
	LastName *string                `json:"lastName"`
	Email    *string                `json:"email"`
	Phone    *string                `json:"phone"`
	Position *string                `json:"position"`
	Salary   *float64               `json:"salary"`
	Status   *models.EmployeeStatus `json:"status"`
}

type EmployeeResponse struct {
	ID         uint                  `json:"id"`
	Name       string                `json:"name"`
	LastName   string                `json:"lastName"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Position   string                `json:"position"`
	Salary     float64               `json:"salary"`
	HiringDate time.Time             `json:"hiringDate"`
	Status     models.EmployeeStatus `json:"status"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func NewEmployeeResponse(e models.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Position:   e.Position,
		Salary:     e.Salary,
		HiringDate: e.HiringDate,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
