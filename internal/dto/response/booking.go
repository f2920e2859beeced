package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type BookingResponse struct {
	ID         string           `json:"id"`
	VehicleID  string           `json:"vehicle_id"`
	UserID     string           `json:"user_id"`
	Vehicle    *VehicleResponse `json:"vehicle,omitempty"`
	User       *UserResponse    `json:"user,omitempty"`
	Approved   bool             `json:"approved"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	TotalPrice float64          `json:"total_price"`
	CreatedAt  time.Time        `json:"created_at"`
}

type RentalHistoryEntry struct {
	BookingID  string  `json:"booking_id"`
	User       string  `json:"user"`
	Vehicle    string  `json:"vehicle"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Duration   float64 `json:"duration"` // in days
	TotalPrice float64 `json:"total_price"`
}

type RentalHistoryResponse struct {
	RentalHistory []RentalHistoryEntry `json:"rental_history"`
}

type RentalReportResponse struct {
	TotalRentals        int64   `json:"total_rentals"`
	TotalEarnings       float64 `json:"total_earnings"`
	TotalDurationInDays float64 `json:"total_duration_in_days"`
}

// BookingToResponse composes the stored booking with explicitly
// fetched vehicle and user views. Either view may be nil.
func BookingToResponse(booking *entity.Booking, vehicle *entity.Vehicle, user *entity.User) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		VehicleID:  booking.VehicleID.String(),
		UserID:     booking.UserID.String(),
		Approved:   booking.Approved,
		StartDate:  booking.StartDate.Format("2006-01-02"),
		EndDate:    booking.EndDate.Format("2006-01-02"),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}

	if vehicle != nil {
		vehicleResp := VehicleToResponse(vehicle)
		resp.Vehicle = &vehicleResp
	}

	if user != nil {
		userResp := UserToResponse(user)
		resp.User = &userResp
	}

	return resp
}
