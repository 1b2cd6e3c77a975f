package filter

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"moto-rentals-backend/internal/domain"
)

var (
	ErrUnknownField = errors.New("unknown filter field")
	ErrInvalidValue = errors.New("invalid filter value")
)

// DefaultState is the reset target for a session: no restrictions and the
// full price range.
func DefaultState(opts domain.FilterOptions) domain.FilterState {
	return domain.FilterState{
		RentalType:       domain.Any,
		AvailableNowOnly: false,
		PriceMin:         opts.PriceBounds.Min,
		PriceMax:         opts.PriceBounds.Max,
		Brands:           []string{},
		ModelYears:       []string{},
		BodyTypes:        []string{},
		Transmission:     domain.Any,
		FuelTypes:        []string{},
	}
}

// SetField replaces one scalar field. Prices are clamped so that
// PriceMin < PriceMax always holds and both stay within bounds. On error the
// returned state equals s.
func SetField(s domain.FilterState, bounds domain.PriceBounds, key domain.FilterKey, value any) (domain.FilterState, error) {
	next := s.Clone()
	switch key {
	case domain.FilterRentalType:
		str, ok := value.(string)
		if !ok || (str != domain.Any && str != string(domain.RentalTypeDay) && str != string(domain.RentalTypeHour)) {
			return s, fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, value)
		}
		next.RentalType = str
	case domain.FilterTransmission:
		str, ok := value.(string)
		if !ok || (str != domain.Any && str != string(domain.TransmissionAutomatic) && str != string(domain.TransmissionManual)) {
			return s, fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, value)
		}
		next.Transmission = str
	case domain.FilterAvailableNowOnly:
		b, err := toBool(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, value)
		}
		next.AvailableNowOnly = b
	case domain.FilterPriceMin:
		f, err := toFloat(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, value)
		}
		next.PriceMin = clampPriceMin(f, s.PriceMax, bounds)
	case domain.FilterPriceMax:
		f, err := toFloat(value)
		if err != nil {
			return s, fmt.Errorf("%w: %s=%v", ErrInvalidValue, key, value)
		}
		next.PriceMax = clampPriceMax(f, s.PriceMin, bounds)
	case domain.FilterBrands, domain.FilterModelYears, domain.FilterBodyTypes, domain.FilterFuelTypes:
		return s, fmt.Errorf("%w: %s is a set, use toggle", ErrInvalidValue, key)
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	return next, nil
}

// ToggleArrayMember adds value to the named facet set, or removes it if it is
// already present.
func ToggleArrayMember(s domain.FilterState, key domain.FilterKey, value string) (domain.FilterState, error) {
	next := s.Clone()
	var set *[]string
	switch key {
	case domain.FilterBrands:
		set = &next.Brands
	case domain.FilterModelYears:
		set = &next.ModelYears
	case domain.FilterBodyTypes:
		set = &next.BodyTypes
	case domain.FilterFuelTypes:
		set = &next.FuelTypes
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	if i := slices.Index(*set, value); i >= 0 {
		*set = slices.Delete(*set, i, i+1)
	} else {
		*set = append(*set, value)
	}
	return next, nil
}

func clampPriceMin(v, priceMax float64, b domain.PriceBounds) float64 {
	return math.Max(b.Min, math.Min(v, priceMax-1))
}

func clampPriceMax(v, priceMin float64, b domain.PriceBounds) float64 {
	return math.Min(b.Max, math.Max(v, priceMin+1))
}

func toFloat(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("unsupported type %T", value)
	}
}
