package dto

type CreatePetRequest struct {
	Name         string  `json:"name" binding:"required"`
	Species      string  `json:"species" binding:"required"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age" binding:"gte=0"`
	Weight       float64 `json:"weight" binding:"gte=0"`
	Color        string  `json:"color"`
	MedicalNotes string  `json:"medicalNotes"`
	SpecialNeeds string  `json:"specialNeeds"`
}

type UpdatePetRequest struct {
	Name         *string  `json:"name"`
	Species      *string  `json:"species"`
	Breed        *string  `json:"breed"`
	Age          *int     `json:"age"`
	Weight       *float64 `json:"weight"`
	Color        *string  `json:"color"`
	MedicalNotes *string  `json:"medicalNotes"`
	SpecialNeeds *string  `json:"specialNeeds"`
}
