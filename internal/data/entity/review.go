package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	VehicleID uuid.UUID `db:"vehicle_id"`
	Rating    float64   `db:"rating"`
	Comment   string    `db:"comment"`
}
