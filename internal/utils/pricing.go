package utils

import (
	"fmt"
	"math"

	"moto-rentals-backend/internal/domain"
)

// FormatPrice renders a price the way the vehicle cards show it: "$20.00".
func FormatPrice(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f", price)
}

// PriceUnit returns the suffix shown next to a price, e.g. "/ day".
func PriceUnit(rentalType domain.RentalType) string {
	switch rentalType {
	case domain.RentalTypeDay:
		return "/ day"
	case domain.RentalTypeHour:
		return "/ hour"
	default:
		return ""
	}
}

// FormatRating renders "4.8 (112)" for the card header.
func FormatRating(rating float64, reviews int) string {
	return fmt.Sprintf("%g (%d)", rating, reviews)
}

// FormatDistance renders "120m (4 min)" for the card header.
func FormatDistance(meters, minutes int) string {
	return fmt.Sprintf("%dm (%d min)", meters, minutes)
}

// AvailabilityLabel is the human label for the availability flag.
func AvailabilityLabel(availableNow bool) string {
	if availableNow {
		return "Available now"
	}
	return "Unavailable"
}
