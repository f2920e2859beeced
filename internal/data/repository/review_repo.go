package repository

import (
	"context"
	"fmt"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, vehicle_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.VehicleID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("vehicle_id", review.VehicleID.String()),
		)
		return fmt.Errorf("create review for vehicle %s by user %s: %w",
			review.VehicleID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, vehicle_id, rating, comment, created_at
		FROM reviews
		WHERE vehicle_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		r.log.Error("Failed to find reviews by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find reviews by vehicle ID %s: %w", vehicleID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.VehicleID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
