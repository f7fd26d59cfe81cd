package controllers

import (
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/dto"
	"pethotel-backend/errors"
	"pethotel-backend/models"
	"pethotel-backend/response"
	"pethotel-backend/services"
	"pethotel-backend/validator"
)

const roomsCacheKey = "rooms:all"

// GetRooms godoc
// @Summary List rooms
// @Tags rooms
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param type query string false "room type filter"
// @Success 200 {object} response.Response
// @Router /rooms [get]
func GetRooms(c *gin.Context) {
	page, limit := parsePagination(c)

	// The unfiltered first page is the one the dashboard hammers.
	cacheable := page == 0 && c.Query("type") == "" && c.Query("availability") == "" && c.Query("limit") == ""
	if cacheable && config.RedisClient != nil {
		var cached []dto.RoomResponse
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, roomsCacheKey, &cached); err == nil && cached != nil {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	tx := config.DB.Model(&models.Room{})
	if roomType := c.Query("type"); roomType != "" {
		tx = tx.Where("type = ?", roomType)
	}
	if availability := c.Query("availability"); availability != "" {
		tx = tx.Where("availability = ?", availability)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Order("number asc").Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, dto.NewRoomResponse(room))
	}

	if cacheable && config.RedisClient != nil {
		_ = services.SetToRedis(config.Ctx, config.RedisClient, roomsCacheKey, roomResponses, 60*time.Second)
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(total))
}

// GetRoomDetail godoc
// @Summary Get one room
// @Tags rooms
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [get]
func GetRoomDetail(c *gin.Context) {
	var room models.Room
	if !firstOrNotFound(c, config.DB, &room) {
		return
	}
	response.Success(c, dto.NewRoomResponse(room))
}

// CreateRoom godoc
// @Summary Register a room
// @Tags rooms
// @Success 200 {object} response.Response
// @Router /rooms [post]
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	availability := request.Availability
	if availability == "" {
		availability = models.RoomAvailable
	}
	if !availability.Valid() {
		response.BadRequest(c, "invalid availability state")
		return
	}

	room := models.Room{
		Number:         request.Number,
		Type:           request.Type,
		Capacity:       request.Capacity,
		Price:          request.Price,
		Availability:   availability,
		Description:    request.Description,
		ImageURL:       request.ImageURL,
		AllowedSpecies: request.AllowedSpecies,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCache(roomsCacheKey)
	refreshRoomSnapshotAsync()

	response.Success(c, dto.NewRoomResponse(room))
}

// UpdateRoom godoc
// @Summary Update a room. Availability changes go through /roomAvailability.
// @Tags rooms
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [put]
func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var room models.Room
	if !firstOrNotFound(c, config.DB, &room) {
		return
	}

	if request.Number != nil {
		room.Number = *request.Number
	}
	if request.Type != nil {
		room.Type = *request.Type
	}
	if request.Capacity != nil {
		room.Capacity = *request.Capacity
	}
	if request.Price != nil {
		room.Price = *request.Price
	}
	if request.Availability != nil {
		// Availability has a single mutation path with its own endpoint.
		response.BadRequest(c, "availability is changed through PUT /roomAvailability")
		return
	}
	if request.Description != nil {
		room.Description = *request.Description
	}
	if request.ImageURL != nil {
		room.ImageURL = *request.ImageURL
	}
	if request.AllowedSpecies != nil {
		room.AllowedSpecies = request.AllowedSpecies
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCache(roomsCacheKey)
	refreshRoomSnapshotAsync()

	response.Success(c, dto.NewRoomResponse(room))
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Router /rooms/{id} [delete]
func DeleteRoom(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", c.Param("id"),
			[]models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed, models.ReservationInProgress}).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c)
		return
	}

	result := config.DB.Delete(&models.Room{}, c.Param("id"))
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateCache(roomsCacheKey)
	refreshRoomSnapshotAsync()

	response.Success(c, nil)
}

// GetAvailableRooms godoc
// @Summary List rooms free for a stay window
// @Tags rooms
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {object} response.Response
// @Router /rooms/available [get]
func GetAvailableRooms(c *gin.Context) {
	startDate, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		response.BadRequest(c, "invalid startDate, use YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, "invalid endDate, use YYYY-MM-DD")
		return
	}
	if endDate.Before(startDate) {
		response.BadRequest(c, "endDate must not be before startDate")
		return
	}

	// Rooms not under maintenance and without an active reservation whose
	// day window touches the requested one. Date windows are inclusive on
	// both ends, so adjacency counts as overlap.
	var rooms []models.Room
	err = config.DB.
		Where("availability <> ?", models.RoomMaintenance).
		Where(`id NOT IN (
			SELECT room_id FROM reservations
			WHERE status IN ?
			AND start_date <= ? AND end_date >= ?
		)`, []models.ReservationStatus{models.ReservationPending, models.ReservationConfirmed, models.ReservationInProgress},
			services.DayOf(endDate), services.DayOf(startDate)).
		Order("number asc").
		Find(&rooms).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	if species := c.Query("species"); species != "" {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.AllowsSpecies(species) {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, dto.NewRoomResponse(room))
	}

	response.Success(c, roomResponses)
}

// ChangeRoomAvailability godoc
// @Summary Manually override a room's stored availability
// @Tags rooms
// @Success 200 {object} response.Response
// @Router /roomAvailability [put]
func ChangeRoomAvailability(c *gin.Context) {
	var request dto.RoomAvailabilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	if _, ok := snapshotStore.Room(request.RoomID); !ok {
		// The room may simply be newer than the snapshot.
		if err := services.RefreshRoomSnapshot(config.DB, snapshotStore); err != nil {
			log.Printf("room snapshot refresh failed: %v", err)
		}
	}

	err := snapshotStore.ApplyManualAvailability(c.Request.Context(), request.RoomID, request.Availability)
	switch {
	case err == nil:
	case err == errors.ErrRoomNotFound:
		response.NotFound(c)
		return
	default:
		appErr := errors.GetAppError(err)
		if appErr != nil && appErr.Code == errors.ErrCodeInvalidStatus {
			response.BadRequest(c, appErr.Message)
			return
		}
		if appErr != nil && appErr.Code == errors.ErrCodeUpdateRejected {
			response.BadGateway(c, "availability update rejected, nothing changed")
			return
		}
		response.ServerError(c)
		return
	}

	invalidateCache(roomsCacheKey)

	room, _ := snapshotStore.Room(request.RoomID)
	response.Success(c, dto.NewRoomResponse(room))
}

// GetRoomMismatches godoc
// @Summary Advisory report of rooms stored available but actually occupied
// @Tags rooms
// @Success 200 {object} response.Response
// @Router /roomMismatches [get]
func GetRoomMismatches(c *gin.Context) {
	stale := false
	if err := services.RefreshRoomSnapshot(config.DB, snapshotStore); err != nil {
		log.Printf("room snapshot refresh failed: %v", err)
		stale = true
	}
	if err := services.RefreshReservationSnapshot(config.DB, snapshotStore); err != nil {
		log.Printf("reservation snapshot refresh failed: %v", err)
		stale = true
	}

	asOf := time.Now()
	findings := snapshotStore.Mismatches(asOf)

	response.Success(c, gin.H{
		"asOf":       asOf,
		"stale":      stale,
		"mismatches": findings,
	})
}

// UploadRoomImage godoc
// @Summary Upload a room photo to the image CDN
// @Tags rooms
// @Param id path int true "room id"
// @Success 200 {object} response.Response
// @Router /rooms/img/upload/{id} [post]
func UploadRoomImage(c *gin.Context) {
	var room models.Room
	if !firstOrNotFound(c, config.DB, &room) {
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}
	defer file.Close()

	uploadResult, err := config.Cloudinary.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{
		Folder: "pethotel/rooms",
	})
	if err != nil {
		log.Printf("cloudinary upload failed: %v", err)
		response.ServerError(c)
		return
	}

	room.ImageURL = uploadResult.SecureURL
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateCache(roomsCacheKey)

	response.Success(c, gin.H{"imageUrl": room.ImageURL})
}

// refreshRoomSnapshotAsync keeps the reconciliation snapshot roughly in
// step with room writes without adding latency to the request.
func refreshRoomSnapshotAsync() {
	if snapshotStore == nil {
		return
	}
	go func() {
		if err := services.RefreshRoomSnapshot(config.DB, snapshotStore); err != nil {
			log.Printf("room snapshot refresh failed: %v", err)
		}
	}()
}
