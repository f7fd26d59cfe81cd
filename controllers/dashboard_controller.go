package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/services"
)

// GetDashboardStats godoc
// @Summary Landing-page counters
// @Tags dashboard
// @Success 200 {object} response.Response
// @Router /dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	var stats dto.DashboardStats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Customer{}, &stats.TotalCustomers},
		{&models.Employee{}, &stats.TotalEmployees},
		{&models.Room{}, &stats.TotalRooms},
		{&models.Reservation{}, &stats.TotalReservations},
	}
	for _, count := range counts {
		if err := config.DB.Model(count.model).Count(count.dest).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	// Active means occupying a room today, so the day-window rule applies,
	// not just the status.
	var candidates []models.Reservation
	if err := config.DB.Where("status IN ?", activeStatuses).Find(&candidates).Error; err != nil {
		response.ServerError(c)
		return
	}
	asOf := time.Now()
	for _, r := range candidates {
		if services.IsActiveNow(r, asOf) {
			stats.ActiveReservations++
		}
	}

	if err := config.DB.Model(&models.Room{}).
		Where("availability = ?", models.RoomAvailable).
		Count(&stats.AvailableRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}

// GetRecentReservations godoc
// @Summary Latest bookings for the dashboard feed
// @Tags dashboard
// @Param limit query int false "limit"
// @Success 200 {object} response.Response
// @Router /dashboard/recent-reservations [get]
func GetRecentReservations(c *gin.Context) {
	_, limit := parsePagination(c)

	var reservations []models.Reservation
	if err := config.DB.Preload("Customer").Preload("Room").
		Order("created_at desc").Limit(limit).
		Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReservationResponses(reservations))
}
