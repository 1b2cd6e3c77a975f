package filter

import "moto-rentals-backend/internal/domain"

func scenarioCatalog() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, Brand: "Honda", Model: "Civic", Year: 2022, BodyType: "Sedan", FuelType: "Petrol", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeDay, Price: 20, AvailableNow: true},
		{ID: 2, Brand: "Tesla", Model: "Model 3", Year: 2023, BodyType: "Sedan", FuelType: "Electric", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeHour, Price: 80, AvailableNow: false},
	}
}

func fleet() []domain.Vehicle {
	return []domain.Vehicle{
		{ID: 1, Brand: "Toyota", Model: "Corolla", Year: 2021, BodyType: "Sedan", FuelType: "Hybrid", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeDay, Price: 19.5, AvailableNow: true},
		{ID: 2, Brand: "audi", Model: "A4", Year: 2022, BodyType: "Sedan", FuelType: "Petrol", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeDay, Price: 64.25, AvailableNow: false},
		{ID: 3, Brand: "BMW", Model: "X5", Year: 2023, BodyType: "SUV", FuelType: "Diesel", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeHour, Price: 98.75, AvailableNow: true},
		{ID: 4, Brand: "Mazda", Model: "MX-5", Year: 2020, BodyType: "Convertible", FuelType: "Petrol", Transmission: domain.TransmissionManual, RentalType: domain.RentalTypeHour, Price: 42, AvailableNow: true},
		{ID: 5, Brand: "Toyota", Model: "Corolla", Year: 2021, BodyType: "Sedan", FuelType: "Hybrid", Transmission: domain.TransmissionManual, RentalType: domain.RentalTypeDay, Price: 22, AvailableNow: false},
		{ID: 6, Brand: "Tesla", Model: "Model S", Year: 2023, BodyType: "Sedan", FuelType: "Electric", Transmission: domain.TransmissionAutomatic, RentalType: domain.RentalTypeHour, Price: 89.99, AvailableNow: true},
	}
}

func ids(vs []domain.Vehicle) []int32 {
	out := make([]int32, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}
