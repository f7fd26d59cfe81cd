package services

import (
	"math"
	"time"

	"pethotel-backend/models"
)

// Nights counts billable nights between two stay dates. A same-day stay
// still bills one night.
func Nights(start, end time.Time) int {
	nights := int(math.Ceil(DayOf(end).Sub(DayOf(start)).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// RoundCurrency rounds to cents so recomputing totals never drifts.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Subtotal is nightly rate times nights plus the selected add-on services.
func Subtotal(room models.Room, start, end time.Time, addons []models.Service) float64 {
	total := room.Price * float64(Nights(start, end))
	for _, svc := range addons {
		total += svc.Price
	}
	return RoundCurrency(total)
}

// ComputeTotals applies the fixed 12% IVA to a subtotal.
func ComputeTotals(subtotal float64) (iva, total float64) {
	iva = RoundCurrency(subtotal * models.IVARate)
	total = RoundCurrency(subtotal + iva)
	return iva, total
}
