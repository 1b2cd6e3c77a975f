package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"moto-rentals-backend/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{20, "$20.00"},
		{19.5, "$19.50"},
		{98.756, "$98.76"},
		{0, "$0.00"},
		{math.NaN(), "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.price))
		})
	}
}

func TestPriceUnit(t *testing.T) {
	assert.Equal(t, "/ day", PriceUnit(domain.RentalTypeDay))
	assert.Equal(t, "/ hour", PriceUnit(domain.RentalTypeHour))
	assert.Equal(t, "", PriceUnit(domain.RentalType("week")))
}

func TestCardLabels(t *testing.T) {
	assert.Equal(t, "4.8 (112)", FormatRating(4.8, 112))
	assert.Equal(t, "5 (0)", FormatRating(5, 0))
	assert.Equal(t, "120m (4 min)", FormatDistance(120, 4))
	assert.Equal(t, "Available now", AvailabilityLabel(true))
	assert.Equal(t, "Unavailable", AvailabilityLabel(false))
}
