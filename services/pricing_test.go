package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pethotel-backend/models"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single night", day(2024, 3, 1), day(2024, 3, 2), 1},
		{"four nights", day(2024, 3, 1), day(2024, 3, 5), 4},
		{"same day still bills one", day(2024, 3, 1), day(2024, 3, 1), 1},
		{"clock times are ignored", time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC), 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Nights(tc.start, tc.end))
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 10.12, RoundCurrency(10.124))
	assert.Equal(t, 10.13, RoundCurrency(10.125))
	assert.Equal(t, 0.0, RoundCurrency(0))
}

func TestSubtotalWithAddons(t *testing.T) {
	room := models.Room{ID: 1, Price: 150}
	addons := []models.Service{
		{Name: "Grooming", Price: 50},
		{Name: "Daily Walks", Price: 25},
	}

	got := Subtotal(room, day(2024, 3, 1), day(2024, 3, 4), addons)
	assert.Equal(t, 525.0, got) // 3 nights * 150 + 75
}

func TestComputeTotalsAppliesFixedTax(t *testing.T) {
	iva, total := ComputeTotals(525.0)
	assert.Equal(t, 63.0, iva)
	assert.Equal(t, 588.0, total)

	// Fractions stay at cent precision.
	iva, total = ComputeTotals(99.99)
	assert.Equal(t, 12.0, iva)
	assert.Equal(t, 111.99, total)
}
