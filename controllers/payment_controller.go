package controllers

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"pethotel-backend/config"
	"pethotel-backend/constants"
	"pethotel-backend/dto"
	"pethotel-backend/models"
	"pethotel-backend/response"
)

// CreatePaymentIntent godoc
// @Summary Open a charge for a pending reservation's total
// @Tags payments
// @Success 200 {object} response.Response
// @Router /payments/intent [post]
func CreatePaymentIntent(c *gin.Context) {
	var request dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if reservation.Status != models.ReservationPending {
		response.BadRequest(c, "only a pending reservation can be paid")
		return
	}

	currency := request.Currency
	if currency == "" {
		currency = "GTQ"
	}

	intent, err := paymentClient.CreateIntent(reservation.Total, currency, fmt.Sprintf("reservation-%d", reservation.ID))
	if err != nil {
		log.Printf("payment intent failed for reservation %d: %v", reservation.ID, err)
		response.BadGateway(c, "payment processor unavailable")
		return
	}

	response.Success(c, dto.PaymentIntentResponse{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	})
}

// ConfirmPayment godoc
// @Summary Confirm a paid intent and move the reservation to confirmed
// @Tags payments
// @Success 200 {object} response.Response
// @Router /payments/confirm [post]
func ConfirmPayment(c *gin.Context) {
	var request dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "invalid payload")
		return
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, request.ReservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	paid, err := paymentClient.ConfirmIntent(request.IntentID)
	if err != nil {
		log.Printf("payment confirmation failed for reservation %d: %v", reservation.ID, err)
		response.BadGateway(c, "payment processor unavailable")
		return
	}
	if !paid {
		response.Success(c, gin.H{"paymentStatus": constants.PaymentStatusPending})
		return
	}

	state := models.GetReservationState(reservation.Status)
	if err := state.Confirm(&reservation); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&reservation).Error; err != nil {
		response.ServerError(c)
		return
	}

	refreshReservationSnapshotAsync()

	response.Success(c, gin.H{
		"paymentStatus": constants.PaymentStatusSuccess,
		"reservation":   dto.NewReservationResponse(reservation),
	})
}
