package filter

import (
	"slices"

	"moto-rentals-backend/internal/domain"
)

// Matches reports whether v passes every clause of s.
func Matches(v domain.Vehicle, s domain.FilterState) bool {
	if s.RentalType != domain.Any && string(v.RentalType) != s.RentalType {
		return false
	}
	if s.AvailableNowOnly && !v.AvailableNow {
		return false
	}
	if v.Price < s.PriceMin || v.Price > s.PriceMax {
		return false
	}
	if len(s.Brands) > 0 && !slices.Contains(s.Brands, v.Brand) {
		return false
	}
	if len(s.ModelYears) > 0 && !slices.Contains(s.ModelYears, v.ModelYear()) {
		return false
	}
	if len(s.BodyTypes) > 0 && !slices.Contains(s.BodyTypes, v.BodyType) {
		return false
	}
	if s.Transmission != domain.Any && string(v.Transmission) != s.Transmission {
		return false
	}
	if len(s.FuelTypes) > 0 && !slices.Contains(s.FuelTypes, v.FuelType) {
		return false
	}
	return true
}

// Apply returns the vehicles matching s in catalog order. The result is never nil.
func Apply(vehicles []domain.Vehicle, s domain.FilterState) []domain.Vehicle {
	out := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if Matches(v, s) {
			out = append(out, v)
		}
	}
	return out
}
