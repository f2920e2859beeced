package request

// Rating carries no range constraint; any numeric value is stored.
type CreateReviewRequest struct {
	VehicleID string  `json:"vehicle_id" validate:"required,uuid4"`
	Rating    float64 `json:"rating" validate:"required"`
	Comment   string  `json:"comment" validate:"required"`
}
