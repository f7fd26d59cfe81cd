package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/validator"
)

// GetEmployees godoc
// @Summary List employees
// @Tags employees
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} response.Response
// @Router /employees [get]
func GetEmployees(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Employee{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if position := c.Query("position"); position != "" {
		tx = tx.Where("position ILIKE ?", "%"+position+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var employees []models.Employee
	if err := tx.Order("name asc").Offset(page * limit).Limit(limit).Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	employeeResponses := make([]dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		employeeResponses = append(employeeResponses, dto.NewEmployeeResponse(employee))
	}

	response.SuccessWithPagination(c, employeeResponses, page, limit, int(total))
}

// GetEmployeeDetail godoc
// @Summary Get one employee
// @Tags employees
// @Param id path int true "employee id"
// @Success 200 {object} response.Response
// @Router /employees/{id} [get]
func GetEmployeeDetail(c *gin.Context) {
	var employee models.Employee
	if !firstOrNotFound(c, config.DB, &employee) {
		return
	}
	response.Success(c, dto.NewEmployeeResponse(employee))
}

// CreateEmployee godoc
// @Summary Register an employee
// @Tags employees
// @Success 200 {object} response.Response
// @Router /employees [post]
func CreateEmployee(c *gin.Context) {
	var request dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	hiringDate := time.Now()
	if request.HiringDate != "" {
		parsed, err := time.Parse("2006-01-02", request.HiringDate)
		if err != nil {
			response.BadRequest(c, "invalid hiringDate, use YYYY-MM-DD")
			return
		}
		hiringDate = parsed
	}

	status := request.Status
	if status == "" {
		status = models.EmployeeActive
	}

	employee := models.Employee{
		Name:       request.Name,
		LastName:   request.LastName,
		Email:      request.Email,
		Phone:      request.Phone,
		Position:   request.Position,
		Salary:     request.Salary,
		HiringDate: hiringDate,
		Status:     status,
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.NewEmployeeResponse(employee))
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Param id path int true "employee id"
// @Success 200 {object} response.Response
// @Router /employees/{id} [put]
func UpdateEmployee(c *gin.Context) {
	var request dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var employee models.Employee
	if !firstOrNotFound(c, config.DB, &employee) {
		return
	}

	if request.Name != nil {
		employee.Name = *request.Name
	}
	if request.LastName != nil {
		employee.LastName = *request.LastName
	}
	if request.Email != nil {
		employee.Email = *request.Email
	}
	if request.Phone != nil {
		employee.Phone = *request.Phone
	}
	if request.Position != nil {
		employee.Position = *request.Position
	}
	if request.Salary != nil {
		employee.Salary = *request.Salary
	}
	if request.Status != nil {
		employee.Status = *request.Status
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.NewEmployeeResponse(employee))
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Param id path int true "employee id"
// @Success 200 {object} response.Response
// @Router /employees/{id} [delete]
func DeleteEmployee(c *gin.Context) {
	result := config.DB.Delete(&models.Employee{}, c.Param("id"))
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
