package dto

import (
	"time"

	"pethotel-backend/models"
)

type CreateCustomerRequest struct {
	Name             string `json:"name" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	DPI              string `json:"dpi"`
	RegistrationDate string `json:"registrationDate"`
	Status           string `json:"status"`
}

type UpdateCustomerRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	DPI      *string `json:"dpi"`
	Status   *string `json:"status"`
}

type CustomerResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	DPI              string    `json:"dpi"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Address:          c.Address,
		DPI:              c.DPI,
		RegistrationDate: c.RegistrationDate,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// ScoredCustomer pairs a customer with its fuzzy-search score.
type ScoredCustomer struct {
	Customer CustomerResponse `json:"customer"`
	Score    int              `json:"score"`
}
