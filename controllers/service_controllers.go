package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/validator"
)

// GetServices godoc
// @Summary List add-on services
// @Tags services
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} response.Response
// @Router /services [get]
func GetServices(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Service{})
	if c.Query("active") == "true" {
		tx = tx.Where("is_active = ?", true)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var catalog []models.Service
	if err := tx.Order("name asc").Offset(page * limit).Limit(limit).Find(&catalog).Error; err != nil {
		response.ServerError(c)
		return
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(catalog))
	for _, svc := range catalog {
		serviceResponses = append(serviceResponses, dto.NewServiceResponse(svc))
	}

	response.SuccessWithPagination(c, serviceResponses, page, limit, int(total))
}

// GetServiceDetail godoc
// @Summary Get one add-on service
// @Tags services
// @Param id path int true "service id"
// @Success 200 {object} response.Response
// @Router /services/{id} [get]
func GetServiceDetail(c *gin.Context) {
	var svc models.Service
	if !firstOrNotFound(c, config.DB, &svc) {
		return
	}
	response.Success(c, dto.NewServiceResponse(svc))
}

// CreateService godoc
// @Summary Register an add-on service
// @Tags services
// @Success 200 {object} response.Response
// @Router /services [post]
func CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	svc := models.Service{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Duration:    request.Duration,
		IsActive:    isActive,
	}

	if err := validator.ValidateService(&svc); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&svc).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.NewServiceResponse(svc))
}

// UpdateService godoc
// @Summary Update an add-on service
// @Tags services
// @Param id path int true "service id"
// @Success 200 {object} response.Response
// @Router /services/{id} [put]
func UpdateService(c *gin.Context) {
	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var svc models.Service
	if !firstOrNotFound(c, config.DB, &svc) {
		return
	}

	if request.Name != nil {
		svc.Name = *request.Name
	}
	if request.Description != nil {
		svc.Description = *request.Description
	}
	if request.Price != nil {
		svc.Price = *request.Price
	}
	if request.Duration != nil {
		svc.Duration = *request.Duration
	}
	if request.IsActive != nil {
		svc.IsActive = *request.IsActive
	}

	if err := validator.ValidateService(&svc); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&svc).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.NewServiceResponse(svc))
}

// DeleteService godoc
// @Summary Deactivate an add-on service
// @Tags services
// @Param id path int true "service id"
// @Success 200 {object} response.Response
// @Router /services/{id} [delete]
func DeleteService(c *gin.Context) {
	var svc models.Service
	if !firstOrNotFound(c, config.DB, &svc) {
		return
	}

	// Soft delete: past reservations priced with this service keep making
	// sense, the service just stops being offered.
	svc.IsActive = false
	if err := config.DB.Save(&svc).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// loadAddonServices resolves the selected add-ons for a booking. Inactive
// or unknown ids fail the whole selection.
func loadAddonServices(ids []uint) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var catalog []models.Service
	if err := config.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&catalog).Error; err != nil {
		return nil, err
	}
	if len(catalog) != len(ids) {
		return nil, fmt.Errorf("one or more services are unknown or inactive")
	}
	return catalog, nil
}
