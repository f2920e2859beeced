package request

type CreateBookingRequest struct {
	VehicleID  string  `json:"vehicle_id" validate:"required,uuid4"`
	StartDate  string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	TotalPrice float64 `json:"total_price" validate:"gte=0"`
}
