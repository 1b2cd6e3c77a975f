package domain

// Sentinel for "no restriction" on the single-choice facets.
const Any = "any"

type FilterKey string

const (
	FilterRentalType       FilterKey = "rentalType"
	FilterAvailableNowOnly FilterKey = "availableNowOnly"
	FilterPriceMin         FilterKey = "priceMin"
	FilterPriceMax         FilterKey = "priceMax"
	FilterBrands           FilterKey = "brands"
	FilterModelYears       FilterKey = "modelYears"
	FilterBodyTypes        FilterKey = "bodyTypes"
	FilterTransmission     FilterKey = "transmission"
	FilterFuelTypes        FilterKey = "fuelTypes"
)

type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type FilterOptions struct {
	PriceBounds PriceBounds `json:"price_bounds"`
	Brands      []string    `json:"brands"`
	ModelYears  []string    `json:"model_years"`
	BodyTypes   []string    `json:"body_types"`
	FuelTypes   []string    `json:"fuel_types"`
}

// FilterState is the user's current selection. Empty facet slices mean no
// restriction; RentalType and Transmission use Any for the same purpose.
type FilterState struct {
	RentalType       string   `json:"rental_type"`
	AvailableNowOnly bool     `json:"available_now_only"`
	PriceMin         float64  `json:"price_min"`
	PriceMax         float64  `json:"price_max"`
	Brands           []string `json:"brands"`
	ModelYears       []string `json:"model_years"`
	BodyTypes        []string `json:"body_types"`
	Transmission     string   `json:"transmission"`
	FuelTypes        []string `json:"fuel_types"`
}

// Clone returns a deep copy so callers can derive a new state without
// aliasing the facet slices of the old one.
func (s FilterState) Clone() FilterState {
	c := s
	c.Brands = cloneStrings(s.Brands)
	c.ModelYears = cloneStrings(s.ModelYears)
	c.BodyTypes = cloneStrings(s.BodyTypes)
	c.FuelTypes = cloneStrings(s.FuelTypes)
	return c
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
