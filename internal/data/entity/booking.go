package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking stores references only; vehicle and user details are
// fetched and composed at the call site.
type Booking struct {
	Base
	VehicleID  uuid.UUID `db:"vehicle_id"`
	UserID     uuid.UUID `db:"user_id"`
	Approved   bool      `db:"approved"` // default false, not consulted by current logic
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	TotalPrice float64   `db:"total_price"`
}

// DurationDays returns the rental length in fractional days.
func (b *Booking) DurationDays() float64 {
	return b.EndDate.Sub(b.StartDate).Hours() / 24
}
