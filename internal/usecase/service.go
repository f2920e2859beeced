package usecase

import (
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Vehicle VehicleService
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Vehicle: NewVehicleService(repo, log),
		Booking: NewBookingService(repo, log),
		Review:  NewReviewService(repo, log),
	}
}
