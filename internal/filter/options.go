package filter

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"moto-rentals-backend/internal/domain"
)

// DeriveOptions computes the facet values and price bounds for a catalog.
// It is pure: the same catalog always yields the same options.
func DeriveOptions(vehicles []domain.Vehicle) domain.FilterOptions {
	opts := domain.FilterOptions{
		PriceBounds: priceBounds(vehicles),
		Brands:      []string{},
		ModelYears:  []string{},
		BodyTypes:   []string{},
		FuelTypes:   []string{},
	}
	if len(vehicles) == 0 {
		return opts
	}

	brands := make([]string, 0, len(vehicles))
	modelYears := make([]string, 0, len(vehicles))
	bodyTypes := make([]string, 0, len(vehicles))
	fuelTypes := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		brands = append(brands, v.Brand)
		modelYears = append(modelYears, v.ModelYear())
		bodyTypes = append(bodyTypes, v.BodyType)
		fuelTypes = append(fuelTypes, v.FuelType)
	}

	opts.Brands = UniqueSorted(brands)
	opts.ModelYears = UniqueSorted(modelYears)
	opts.BodyTypes = UniqueSorted(bodyTypes)
	opts.FuelTypes = UniqueSorted(fuelTypes)
	return opts
}

func priceBounds(vehicles []domain.Vehicle) domain.PriceBounds {
	if len(vehicles) == 0 {
		return domain.PriceBounds{Min: 0, Max: 1}
	}
	lo, hi := vehicles[0].Price, vehicles[0].Price
	for _, v := range vehicles[1:] {
		lo = math.Min(lo, v.Price)
		hi = math.Max(hi, v.Price)
	}
	b := domain.PriceBounds{Min: math.Floor(lo), Max: math.Ceil(hi)}
	// The range must stay non-empty so that PriceMin < PriceMax holds at reset.
	if b.Max <= b.Min {
		b.Max = b.Min + 1
	}
	return b
}

// UniqueSorted removes duplicates and sorts with English collation. Values
// the collator ranks equal fall back to byte order.
func UniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	c := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		if r := c.CompareString(out[i], out[j]); r != 0 {
			return r < 0
		}
		return out[i] < out[j]
	})
	return out
}
