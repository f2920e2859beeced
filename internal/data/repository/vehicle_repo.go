package repository

import (
	"context"
	"fmt"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, make, model, year, price_per_day, available, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.PricePerDay,
		vehicle.Available,
		vehicle.Image,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("make", vehicle.Make),
			zap.String("model", vehicle.Model),
		)
		return fmt.Errorf("create vehicle %s %s: %w", vehicle.Make, vehicle.Model, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `
		SELECT id, make, model, year, price_per_day, available, image, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicle entity.Vehicle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.PricePerDay,
		&vehicle.Available,
		&vehicle.Image,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return &vehicle, nil
}

func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, make, model, year, price_per_day, available, image, created_at, updated_at
		FROM vehicles
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find vehicles", zap.Error(err))
		return nil, fmt.Errorf("find all vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*entity.Vehicle
	for rows.Next() {
		var vehicle entity.Vehicle
		err := rows.Scan(
			&vehicle.ID,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.PricePerDay,
			&vehicle.Available,
			&vehicle.Image,
			&vehicle.CreatedAt,
			&vehicle.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, nil
}

func (r *vehicleRepository) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE vehicles SET available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		r.log.Error("Failed to update vehicle availability",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
			zap.Bool("available", available),
		)
		return fmt.Errorf("update vehicle %s availability: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	return nil
}
