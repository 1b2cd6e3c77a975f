package http

import (
	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/service"
	"moto-rentals-backend/internal/utils"
)

// EmptyResultsMessage is shown when no vehicle matches the current filters.
const EmptyResultsMessage = "No vehicles match the selected filters."

type VehicleCard struct {
	ID             int32   `json:"id"`
	Name           string  `json:"name"`
	Subtitle       string  `json:"subtitle"`
	Image          string  `json:"image"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"reviews"`
	RatingLabel    string  `json:"rating_label"`
	Price          float64 `json:"price"`
	PriceLabel     string  `json:"price_label"`
	PriceUnit      string  `json:"price_unit"`
	DistanceMeters int     `json:"distance_meters"`
	WalkMinutes    int     `json:"walk_minutes"`
	DistanceLabel  string  `json:"distance_label"`
}

type VehicleDetail struct {
	VehicleCard
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	ModelYear     string `json:"model_year"`
	BodyType      string `json:"body_type"`
	Transmission  string `json:"transmission"`
	FuelType      string `json:"fuel_type"`
	RentalType    string `json:"rental_type"`
	AvailableNow  bool   `json:"available_now"`
	Availability  string `json:"availability"`
	Model3D       string `json:"model_3d,omitempty"`
	FallbackImage string `json:"fallback_image"`
}

type VehicleList struct {
	Count    int           `json:"count"`
	Vehicles []VehicleCard `json:"vehicles"`
	Message  string        `json:"message,omitempty"`
}

type SessionResponse struct {
	ID              string               `json:"id"`
	Token           string               `json:"token,omitempty"`
	Filters         domain.FilterState   `json:"filters"`
	Options         domain.FilterOptions `json:"options"`
	Panel           domain.PanelState    `json:"panel"`
	Results         VehicleList          `json:"results"`
	SelectedVehicle *VehicleDetail       `json:"selected_vehicle"`
	ReplaceURL      string               `json:"replace_url,omitempty"`
}

func MapVehicleToCard(v domain.Vehicle) VehicleCard {
	meters, minutes := v.Distance(), v.Walk()
	return VehicleCard{
		ID:             v.ID,
		Name:           v.Name,
		Subtitle:       v.Subtitle,
		Image:          v.Image,
		Rating:         v.Rating,
		Reviews:        v.Reviews,
		RatingLabel:    utils.FormatRating(v.Rating, v.Reviews),
		Price:          v.Price,
		PriceLabel:     utils.FormatPrice(v.Price),
		PriceUnit:      utils.PriceUnit(v.RentalType),
		DistanceMeters: meters,
		WalkMinutes:    minutes,
		DistanceLabel:  utils.FormatDistance(meters, minutes),
	}
}

func MapVehicleToDetail(v domain.Vehicle) VehicleDetail {
	return VehicleDetail{
		VehicleCard:   MapVehicleToCard(v),
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		ModelYear:     v.ModelYear(),
		BodyType:      v.BodyType,
		Transmission:  string(v.Transmission),
		FuelType:      v.FuelType,
		RentalType:    string(v.RentalType),
		AvailableNow:  v.AvailableNow,
		Availability:  utils.AvailabilityLabel(v.AvailableNow),
		Model3D:       v.Model3D,
		FallbackImage: v.Image,
	}
}

func MapVehicleList(vehicles []domain.Vehicle) VehicleList {
	list := VehicleList{
		Count:    len(vehicles),
		Vehicles: make([]VehicleCard, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		list.Vehicles = append(list.Vehicles, MapVehicleToCard(v))
	}
	if list.Count == 0 {
		list.Message = EmptyResultsMessage
	}
	return list
}

func MapSessionView(view *service.SessionView, token string) SessionResponse {
	resp := SessionResponse{
		ID:         view.ID,
		Token:      token,
		Filters:    view.Filters,
		Options:    view.Options,
		Panel:      view.Panel,
		Results:    MapVehicleList(view.VisibleVehicles),
		ReplaceURL: view.ReplaceURL,
	}
	if view.SelectedVehicle != nil {
		detail := MapVehicleToDetail(*view.SelectedVehicle)
		resp.SelectedVehicle = &detail
	}
	return resp
}
