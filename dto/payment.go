package dto

// CreatePaymentIntentRequest opens a charge for a reservation total.
type CreatePaymentIntentRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	Currency      string `json:"currency"`
}

// ConfirmPaymentRequest closes the loop after the front-end completed the
// card flow with the processor.
type ConfirmPaymentRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	IntentID      string `json:"intentId" binding:"required"`
}

type PaymentIntentResponse struct {
	IntentID     string  `json:"intentId"`
	ClientSecret string  `json:"clientSecret"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}
