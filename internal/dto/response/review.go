package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type ReviewResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ReviewerName string    `json:"reviewer_name,omitempty"`
	VehicleID    string    `json:"vehicle_id"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, reviewerName string) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		UserID:       review.UserID.String(),
		ReviewerName: reviewerName,
		VehicleID:    review.VehicleID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}
}
