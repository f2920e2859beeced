package repository

import (
	"vehicle-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Vehicle VehicleRepository
	Booking BookingRepository
	Review  ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Vehicle: NewVehicleRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Review:  NewReviewRepository(db, log),
	}
}
