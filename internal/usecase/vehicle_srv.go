package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/dto/response"
	"vehicle-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleService interface {
	GetVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error)
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) GetVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	vehicleResponses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		vehicleResponses[i] = response.VehicleToResponse(vehicle)
	}

	s.log.Info("Vehicles retrieved", zap.Int("count", len(vehicles)))
	return vehicleResponses, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.CreateVehicleRequest) (*response.VehicleResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Available defaults to true when omitted
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		Available:   available,
		Image:       req.Image,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("make", req.Make),
			zap.String("model", req.Model),
		)
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("make", vehicle.Make),
		zap.String("model", vehicle.Model),
	)

	vehicleResp := response.VehicleToResponse(vehicle)
	return &vehicleResp, nil
}
