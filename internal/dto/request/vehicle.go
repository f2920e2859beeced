package request

type CreateVehicleRequest struct {
	Make        string  `json:"make" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	Year        int     `json:"year" validate:"required,gte=1900"`
	PricePerDay float64 `json:"price_per_day" validate:"required,gte=0"`
	Available   *bool   `json:"available,omitempty"`
	Image       *string `json:"image,omitempty"`
}
