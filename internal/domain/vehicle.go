package domain

import "fmt"

type RentalType string

const (
	RentalTypeDay  RentalType = "day"
	RentalTypeHour RentalType = "hour"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Placeholder card values used when the catalog carries no location data.
const (
	DefaultDistanceMeters = 120
	DefaultWalkMinutes    = 4
)

type Vehicle struct {
	ID             int32        `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	Subtitle       string       `json:"subtitle" yaml:"subtitle"`
	Brand          string       `json:"brand" yaml:"brand"`
	Model          string       `json:"model" yaml:"model"`
	Year           int          `json:"year" yaml:"year"`
	BodyType       string       `json:"body_type" yaml:"body_type"`
	FuelType       string       `json:"fuel_type" yaml:"fuel_type"`
	Transmission   Transmission `json:"transmission" yaml:"transmission"`
	RentalType     RentalType   `json:"rental_type" yaml:"rental_type"`
	Price          float64      `json:"price" yaml:"price"`
	Rating         float64      `json:"rating" yaml:"rating"`
	Reviews        int          `json:"reviews" yaml:"reviews"`
	AvailableNow   bool         `json:"available_now" yaml:"available_now"`
	Image          string       `json:"image" yaml:"image"`
	Model3D        string       `json:"model_3d,omitempty" yaml:"model_3d"`
	DistanceMeters *int         `json:"distance_meters,omitempty" yaml:"distance_meters"`
	WalkMinutes    *int         `json:"walk_minutes,omitempty" yaml:"walk_minutes"`
}

// ModelYear is the composite facet label, e.g. "Civic 2022".
func (v Vehicle) ModelYear() string {
	return fmt.Sprintf("%s %d", v.Model, v.Year)
}

func (v Vehicle) Distance() int {
	if v.DistanceMeters == nil {
		return DefaultDistanceMeters
	}
	return *v.DistanceMeters
}

func (v Vehicle) Walk() int {
	if v.WalkMinutes == nil {
		return DefaultWalkMinutes
	}
	return *v.WalkMinutes
}

// Validate checks the catalog invariants for a single record.
func (v Vehicle) Validate() error {
	if v.ID == 0 {
		return fmt.Errorf("vehicle id is required")
	}
	if v.Brand == "" || v.BodyType == "" || v.FuelType == "" {
		return fmt.Errorf("vehicle %d: brand, body type and fuel type are required", v.ID)
	}
	if v.Transmission != TransmissionAutomatic && v.Transmission != TransmissionManual {
		return fmt.Errorf("vehicle %d: invalid transmission %q", v.ID, v.Transmission)
	}
	if v.RentalType != RentalTypeDay && v.RentalType != RentalTypeHour {
		return fmt.Errorf("vehicle %d: invalid rental type %q", v.ID, v.RentalType)
	}
	if v.Price < 0 {
		return fmt.Errorf("vehicle %d: price must not be negative", v.ID)
	}
	return nil
}
