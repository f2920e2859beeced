package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type VehicleResponse struct {
	ID          string    `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PricePerDay float64   `json:"price_per_day"`
	Available   bool      `json:"available"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converter
func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          vehicle.ID.String(),
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		PricePerDay: vehicle.PricePerDay,
		Available:   vehicle.Available,
		Image:       vehicle.Image,
		CreatedAt:   vehicle.CreatedAt,
	}
}
