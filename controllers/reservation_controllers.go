package controllers

import (
	stderrors "errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"pethotel-backend/builders"
	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/services"
	"pethotel-backend/validator"
)

const activeReservationsCacheKey = "reservations:active"

var activeStatuses = []models.ReservationStatus{
	models.ReservationPending,
	models.ReservationConfirmed,
	models.ReservationInProgress,
}

// GetReservations godoc
// @Summary List reservations
// @Tags reservations
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param status query string false "status filter"
// @Success 200 {object} response.Response
// @Router /reservations [get]
func GetReservations(c *gin.Context) {
	page, limit := parsePagination(c)

	tx := config.DB.Model(&models.Reservation{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		tx = tx.Where("room_id = ?", roomID)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		tx = tx.Where("customer_id = ?", customerID)
	}
	if from := c.Query("fromDate"); from != "" {
		fromDate, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(c, "invalid fromDate, use YYYY-MM-DD")
			return
		}
		tx = tx.Where("end_date >= ?", fromDate)
	}
	if to := c.Query("toDate"); to != "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(c, "invalid toDate, use YYYY-MM-DD")
			return
		}
		tx = tx.Where("start_date <= ?", toDate)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reservations []models.Reservation
	if err := tx.Preload("Customer").Preload("Room").
		Order("start_date desc").Offset(page * limit).Limit(limit).
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, toReservationResponses(reservations), page, limit, int(total))
}

// GetReservationDetail godoc
// @Summary Get one reservation with related records
// @Tags reservations
// @Param id path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservations/{id} [get]
func GetReservationDetail(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.Preload("Customer").Preload("Room").Preload("Employee").
		First(&reservation, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, dto.NewReservationResponse(reservation))
}

// CreateReservation godoc
// @Summary Book a room
// @Tags reservations
// @Success 200 {object} response.Response
// @Router /reservations [post]
func CreateReservation(c *gin.Context) {
	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	startDate, err := time.Parse("2006-01-02", request.StartDate)
	if err != nil {
		response.BadRequest(c, "invalid startDate, use YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", request.EndDate)
	if err != nil {
		response.BadRequest(c, "invalid endDate, use YYYY-MM-DD")
		return
	}
	if err := validator.ValidateReservationDates(startDate, endDate); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, request.CustomerID).Error; err != nil {
		response.BadRequest(c, "customer not found")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, request.RoomID).Error; err != nil {
		response.BadRequest(c, "room not found")
		return
	}
	if room.Availability == models.RoomMaintenance {
		response.BadRequest(c, "room is under maintenance")
		return
	}

	if request.EmployeeID != 0 {
		var employee models.Employee
		if err := config.DB.First(&employee, request.EmployeeID).Error; err != nil {
			response.BadRequest(c, "employee not found")
			return
		}
	}

	if overlaps, err := roomHasOverlap(room.ID, startDate, endDate, 0); err != nil {
		response.ServerError(c)
		return
	} else if overlaps {
		response.Conflict(c)
		return
	}

	addons, err := loadAddonServices(request.ServiceIDs)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reservation := builders.NewReservationBuilder().
		WithCustomer(request.CustomerID).
		WithRoom(room).
		WithEmployee(request.EmployeeID).
		WithStay(startDate, endDate).
		WithAddons(addons).
		WithObservation(request.Observation).
		Build()

	if err := validator.ValidateReservationTotals(reservation); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	reservation.Customer = &customer
	reservation.Room = &room
	response.Success(c, dto.NewReservationResponse(*reservation))
}

// UpdateReservation godoc
// @Summary Update a reservation's dates or notes
// @Tags reservations
// @Param id path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservations/{id} [put]
func UpdateReservation(c *gin.Context) {
	var request dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var reservation models.Reservation
	if !firstOrNotFound(c, config.DB, &reservation) {
		return
	}

	if reservation.Status == models.ReservationCompleted || reservation.Status == models.ReservationCanceled {
		response.BadRequest(c, "a finished reservation cannot be edited")
		return
	}

	startDate := reservation.StartDate
	endDate := reservation.EndDate
	datesChanged := false
	if request.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.StartDate)
		if err != nil {
			response.BadRequest(c, "invalid startDate, use YYYY-MM-DD")
			return
		}
		startDate = parsed
		datesChanged = true
	}
	if request.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *request.EndDate)
		if err != nil {
			response.BadRequest(c, "invalid endDate, use YYYY-MM-DD")
			return
		}
		endDate = parsed
		datesChanged = true
	}

	if datesChanged {
		if reservation.Status == models.ReservationInProgress {
			response.BadRequest(c, "cannot move the dates of a stay in progress")
			return
		}
		if err := validator.ValidateReservationDates(startDate, endDate); err != nil {
			response.ValidationError(c, err.Error())
			return
		}
		if overlaps, err := roomHasOverlap(reservation.RoomID, startDate, endDate, reservation.ID); err != nil {
			response.ServerError(c)
			return
		} else if overlaps {
			response.Conflict(c)
			return
		}

		var room models.Room
		if err := config.DB.First(&room, reservation.RoomID).Error; err != nil {
			response.ServerError(c)
			return
		}

		// The stored subtotal is nights plus add-ons; keep the add-on part
		// and reprice only the nights.
		oldNights := services.RoundCurrency(room.Price * float64(services.Nights(reservation.StartDate, reservation.EndDate)))
		addonPart := services.RoundCurrency(reservation.SubTotal - oldNights)
		if addonPart < 0 {
			addonPart = 0
		}
		newNights := services.RoundCurrency(room.Price * float64(services.Nights(startDate, endDate)))

		reservation.StartDate = startDate
		reservation.EndDate = endDate
		reservation.SubTotal = services.RoundCurrency(newNights + addonPart)
		reservation.IVA, reservation.Total = services.ComputeTotals(reservation.SubTotal)
	}

	if request.EmployeeID != nil {
		var employee models.Employee
		if err := config.DB.First(&employee, *request.EmployeeID).Error; err != nil {
			response.BadRequest(c, "employee not found")
			return
		}
		reservation.EmployeeID = *request.EmployeeID
	}
	if request.Observation != nil {
		reservation.Observation = *request.Observation
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, dto.NewReservationResponse(reservation))
}

// DeleteReservation godoc
// @Summary Delete a reservation that never started
// @Tags reservations
// @Param id path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservations/{id} [delete]
func DeleteReservation(c *gin.Context) {
	var reservation models.Reservation
	if !firstOrNotFound(c, config.DB, &reservation) {
		return
	}

	if reservation.Status != models.ReservationPending && reservation.Status != models.ReservationCanceled {
		response.Conflict(c)
		return
	}

	if err := config.DB.Delete(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, nil)
}

// ChangeReservationStatus godoc
// @Summary Drive a reservation through its lifecycle
// @Tags reservations
// @Success 200 {object} response.Response
// @Router /reservationStatus [put]
func ChangeReservationStatus(c *gin.Context) {
	var request dto.ReservationStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	if err := validator.ValidateReservationStatus(request.Status); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := applyTransition(&reservation, request.Status); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, dto.NewReservationResponse(reservation))
}

// CheckInReservation godoc
// @Summary Record the guest's arrival
// @Tags reservations
// @Param id path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservations/{id}/checkin [post]
func CheckInReservation(c *gin.Context) {
	var reservation models.Reservation
	if !firstOrNotFound(c, config.DB, &reservation) {
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Start(&reservation); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	now := time.Now()
	reservation.CheckInDate = &now

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, dto.NewReservationResponse(reservation))
}

// CheckOutReservation godoc
// @Summary Record the guest's departure
// @Tags reservations
// @Param id path int true "reservation id"
// @Success 200 {object} response.Response
// @Router /reservations/{id}/checkout [post]
func CheckOutReservation(c *gin.Context) {
	var reservation models.Reservation
	if !firstOrNotFound(c, config.DB, &reservation) {
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Complete(&reservation); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	now := time.Now()
	reservation.CheckOutDate = &now

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, dto.NewReservationResponse(reservation))
}

// GetActiveReservations godoc
// @Summary Reservations occupying a room right now
// @Tags reservations
// @Success 200 {object} response.Response
// @Router /reservations/active [get]
func GetActiveReservations(c *gin.Context) {
	if config.RedisClient != nil {
		var cached []dto.ReservationResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, activeReservationsCacheKey, &cached); err == nil && cached != nil {
			response.Success(c, cached)
			return
		}
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("Customer").Preload("Room").
		Where("status IN ?", activeStatuses).
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	asOf := time.Now()
	active := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if services.IsActiveNow(r, asOf) {
			active = append(active, r)
		}
	}

	out := toReservationResponses(active)
	if config.RedisClient != nil {
		_ = services.SetToRedis(config.Ctx, config.RedisClient, activeReservationsCacheKey, out, 30*time.Second)
	}

	response.Success(c, out)
}

// GetReservationsByCustomer godoc
// @Summary Reservation history of one customer
// @Tags reservations
// @Param id path int true "customer id"
// @Success 200 {object} response.Response
// @Router /reservations/customer/{id} [get]
func GetReservationsByCustomer(c *gin.Context) {
	var customer models.Customer
	if !firstOrNotFound(c, config.DB, &customer) {
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("Room").
		Where("customer_id = ?", customer.ID).
		Order("start_date desc").
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}

// GetReservationsByRoom godoc
// @Summary Reservation history of one room
// @Tags reservations
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Router /reservations/room/{id} [get]
func GetReservationsByRoom(c *gin.Context) {
	var room models.Room
	if !firstOrNotFound(c, config.DB, &room) {
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Preload("Customer").
		Where("room_id = ?", room.ID).
		Order("start_date desc").
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}

// GetReservationReports godoc
// @Summary Reservations in a period with the monetary roll-up
// @Tags reservations
// @Param fromDate query string true "YYYY-MM-DD"
// @Param toDate query string true "YYYY-MM-DD"
// @Param status query string false "status filter"
// @Success 200 {object} response.Response
// @Router /reservations/reports [get]
func GetReservationReports(c *gin.Context) {
	fromDate, err := time.Parse("2006-01-02", c.Query("fromDate"))
	if err != nil {
		response.BadRequest(c, "invalid fromDate, use YYYY-MM-DD")
		return
	}
	toDate, err := time.Parse("2006-01-02", c.Query("toDate"))
	if err != nil {
		response.BadRequest(c, "invalid toDate, use YYYY-MM-DD")
		return
	}
	if toDate.Before(fromDate) {
		response.BadRequest(c, "toDate must not be before fromDate")
		return
	}

	tx := config.DB.Preload("Customer").Preload("Room").
		Where("start_date <= ? AND end_date >= ?", toDate, fromDate)
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := tx.Order("start_date asc").Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	report := dto.ReservationReport{
		Reservations: toReservationResponses(reservations),
		Count:        len(reservations),
	}
	for _, r := range reservations {
		report.SubTotal += r.SubTotal
		report.IVA += r.IVA
		report.Total += r.Total
	}
	report.SubTotal = services.RoundCurrency(report.SubTotal)
	report.IVA = services.RoundCurrency(report.IVA)
	report.Total = services.RoundCurrency(report.Total)

	response.Success(c, report)
}

// applyTransition routes a requested target status through the state
// machine, so the closed transition rules stay in one place.
func applyTransition(r *models.Reservation, target models.ReservationStatus) error {
	state := models.GetReservationState(r.Status)
	switch target {
	case models.ReservationConfirmed:
		return state.Confirm(r)
	case models.ReservationInProgress:
		return state.Start(r)
	case models.ReservationCompleted:
		return state.Complete(r)
	case models.ReservationCanceled:
		return state.Cancel(r)
	default:
		return errInvalidTarget
	}
}

var errInvalidTarget = stderrors.New("a reservation cannot transition back to pending")

// roomHasOverlap reports whether an active reservation of the room touches
// the given inclusive day window. excludeID skips the reservation being
// edited.
func roomHasOverlap(roomID uint, startDate, endDate time.Time, excludeID uint) (bool, error) {
	tx := config.DB.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", roomID, activeStatuses).
		Where("start_date <= ? AND end_date >= ?", services.DayOf(endDate), services.DayOf(startDate))
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func toReservationResponses(reservations []models.Reservation) []dto.ReservationResponse {
	out := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, dto.NewReservationResponse(r))
	}
	return out
}

func refreshReservationSnapshotAsync() {
	invalidateCache(activeReservationsCacheKey)
	if snapshotStore == nil {
		return
	}
	go func() {
		if err := services.RefreshReservationSnapshot(config.DB, snapshotStore); err != nil {
			log.Printf("reservation snapshot refresh failed: %v", err)
		}
	}()
}
