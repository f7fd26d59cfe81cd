package models

import "time"

type Customer struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:120"`
	Phone            string    `json:"phone" gorm:"size:20"`
	Address          string    `json:"address"`
	DPI              string    `json:"dpi" gorm:"column:dpi;size:20"`
	RegistrationDate time.Time `json:"registrationDate"`
	Status           string    `json:"status" gorm:"size:20;default:active"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:CustomerID"`
	Pets         []Pet         `json:"pets,omitempty" gorm:"foreignKey:CustomerID"`
}
