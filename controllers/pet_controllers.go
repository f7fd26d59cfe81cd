package controllers

import (
	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
)

// CreatePet godoc
// @Summary Register a pet under a customer
// @Tags pets
// @Param id path int true "customer id"
// @Success 200 {object} response.Response
// @Router /customers/{id}/pets [post]
func CreatePet(c *gin.Context) {
	var customer models.Customer
	if !firstOrNotFound(c, config.DB, &customer) {
		return
	}

	var request dto.CreatePetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	pet := models.Pet{
		CustomerID:   customer.ID,
		Name:         request.Name,
		Species:      request.Species,
		Breed:        request.Breed,
		Age:          request.Age,
		Weight:       request.Weight,
		Color:        request.Color,
		MedicalNotes: request.MedicalNotes,
		SpecialNeeds: request.SpecialNeeds,
	}

	if err := config.DB.Create(&pet).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, pet)
}

// UpdatePet godoc
// @Summary Update a pet
// @Tags pets
// @Param id path int true "pet id"
// @Success 200 {object} response.Response
// @Router /pets/{id} [put]
func UpdatePet(c *gin.Context) {
	var request dto.UpdatePetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var pet models.Pet
	if !firstOrNotFound(c, config.DB, &pet) {
		return
	}

	if request.Name != nil {
		pet.Name = *request.Name
	}
	if request.Species != nil {
		pet.Species = *request.Species
	}
	if request.Breed != nil {
		pet.Breed = *request.Breed
	}
	if request.Age != nil {
		pet.Age = *request.Age
	}
	if request.Weight != nil {
		pet.Weight = *request.Weight
	}
	if request.Color != nil {
		pet.Color = *request.Color
	}
	if request.MedicalNotes != nil {
		pet.MedicalNotes = *request.MedicalNotes
	}
	if request.SpecialNeeds != nil {
		pet.SpecialNeeds = *request.SpecialNeeds
	}

	if err := config.DB.Save(&pet).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, pet)
}

// DeletePet godoc
// @Summary Delete a pet
// @Tags pets
// @Param id path int true "pet id"
// @Success 200 {object} response.Response
// @Router /pets/{id} [delete]
func DeletePet(c *gin.Context) {
	result := config.DB.Delete(&models.Pet{}, c.Param("id"))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}
	response.Success(c, nil)
}
