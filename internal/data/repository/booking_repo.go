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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	AggregateByVehicleID(ctx context.Context, vehicleID uuid.UUID) (totalRentals int64, totalEarnings, totalDurationDays float64, err error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, vehicle_id, user_id, approved, start_date, end_date, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.VehicleID,
		booking.UserID,
		booking.Approved,
		booking.StartDate,
		booking.EndDate,
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking for vehicle %s: %w", booking.VehicleID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, vehicle_id, user_id, approved, start_date, end_date, total_price, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.VehicleID,
		&booking.UserID,
		&booking.Approved,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT id, vehicle_id, user_id, approved, start_date, end_date, total_price, created_at, updated_at
		FROM bookings
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find all bookings: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, vehicle_id, user_id, approved, start_date, end_date, total_price, created_at, updated_at
		FROM bookings
		WHERE vehicle_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		r.log.Error("Failed to find bookings by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find bookings by vehicle ID %s: %w", vehicleID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) AggregateByVehicleID(ctx context.Context, vehicleID uuid.UUID) (int64, float64, float64, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_price), 0),
		       COALESCE(SUM(EXTRACT(EPOCH FROM (end_date - start_date))) / 86400, 0)
		FROM bookings
		WHERE vehicle_id = $1
	`

	var totalRentals int64
	var totalEarnings, totalDurationDays float64
	err := r.db.QueryRow(ctx, query, vehicleID).Scan(&totalRentals, &totalEarnings, &totalDurationDays)
	if err != nil {
		r.log.Error("Failed to aggregate bookings by vehicle ID",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return 0, 0, 0, fmt.Errorf("aggregate bookings for vehicle %s: %w", vehicleID.String(), err)
	}

	return totalRentals, totalEarnings, totalDurationDays, nil
}

func (r *bookingRepository) scanRows(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.VehicleID,
			&booking.UserID,
			&booking.Approved,
			&booking.StartDate,
			&booking.EndDate,
			&booking.TotalPrice,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
