package models

import "time"

type Pet struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CustomerID   uint      `json:"customerId" gorm:"index"`
	Name         string    `json:"name" gorm:"size:60"`
	Species      string    `json:"species" gorm:"size:40"`
	Breed        string    `json:"breed" gorm:"size:60"`
	Age          int       `json:"age"`
	Weight       float64   `json:"weight"`
	Color        string    `json:"color" gorm:"size:40"`
	MedicalNotes string    `json:"medicalNotes,omitempty"`
	SpecialNeeds string    `json:"specialNeeds,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}
