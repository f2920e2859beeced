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

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, vehicleID string) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
	}

	// Vehicle must exist
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		s.log.Error("Failed to check vehicle", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", req.VehicleID)
	}

	// Create review entity
	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userUUID,
		VehicleID: vehicleID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.String("vehicle_id", req.VehicleID),
		zap.Float64("rating", req.Rating),
	)

	reviewResp := response.ReviewToResponse(review, "")
	return &reviewResp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, vehicleID string) ([]response.ReviewResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	reviews, err := s.repo.Review.FindByVehicleID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	// Attach reviewer name only; other user fields stay private
	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		var reviewerName string
		user, _ := s.repo.User.FindByID(ctx, review.UserID)
		if user != nil {
			reviewerName = user.Name
		}

		reviewResponses[i] = response.ReviewToResponse(review, reviewerName)
	}

	s.log.Info("Reviews retrieved",
		zap.String("vehicle_id", vehicleID),
		zap.Int("count", len(reviews)),
	)

	return reviewResponses, nil
}
