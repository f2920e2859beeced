package usecase

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func createBookingReq(vehicleID uuid.UUID, startDate, endDate string, totalPrice float64) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VehicleID:  vehicleID.String(),
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: totalPrice,
	}
}

func sampleVehicle(available bool) *entity.Vehicle {
	now := time.Now()
	return &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Make:        "Toyota",
		Model:       "Corolla",
		Year:        2022,
		PricePerDay: 50,
		Available:   available,
	}
}

func sampleBooking(vehicleID, userID uuid.UUID, price float64, days int) *entity.Booking {
	now := time.Now()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VehicleID:  vehicleID,
		UserID:     userID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days),
		TotalPrice: price,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	vehicle := sampleVehicle(true)
	userID := uuid.New()

	var createdBooking *entity.Booking
	var availabilitySet *bool

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
		updateAvailabilityFn: func(ctx context.Context, id uuid.UUID, available bool) error {
			availabilitySet = &available
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			createdBooking = booking
			return nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), userID.String(), createBookingReq(vehicle.ID, "2026-03-01", "2026-03-03", 100))

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.NotNil(t, createdBooking)
	assert.Equal(t, vehicle.ID, createdBooking.VehicleID)
	assert.Equal(t, userID, createdBooking.UserID)
	assert.False(t, createdBooking.Approved)
	assert.NotNil(t, availabilitySet)
	assert.False(t, *availabilitySet)
	assert.Equal(t, float64(100), resp.TotalPrice)
}

func TestCreateBooking_AvailabilityFailureRollsBack(t *testing.T) {
	vehicle := sampleVehicle(true)

	var createdID, deletedID uuid.UUID
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
		updateAvailabilityFn: func(ctx context.Context, id uuid.UUID, available bool) error {
			return assert.AnError
		},
	}
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			createdID = booking.ID
			return nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deletedID = id
			// Rollback failure must not mask the availability error
			return assert.AnError
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), uuid.NewString(), createBookingReq(vehicle.ID, "2026-03-01", "2026-03-03", 100))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "update vehicle availability")
	assert.Nil(t, resp)
	assert.Equal(t, createdID, deletedID, "the created booking is the one rolled back")
}

func TestCreateBooking_VehicleUnavailable(t *testing.T) {
	vehicle := sampleVehicle(false)

	createCalled := false
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			createCalled = true
			return nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), uuid.NewString(), createBookingReq(vehicle.ID, "2026-03-01", "2026-03-03", 100))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Nil(t, resp)
	assert.False(t, createCalled, "no writes should happen for an unavailable vehicle")
}

func TestCreateBooking_VehicleMissing(t *testing.T) {
	createCalled := false
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return nil, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *entity.Booking) error {
			createCalled = true
			return nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), uuid.NewString(), createBookingReq(uuid.New(), "2026-03-01", "2026-03-03", 100))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Nil(t, resp)
	assert.False(t, createCalled)
}

func TestCreateBooking_EndBeforeStart(t *testing.T) {
	vehicle := sampleVehicle(true)
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, &mockBookingRepo{}, nil), zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), createBookingReq(vehicle.ID, "2026-03-03", "2026-03-01", 100))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date range")
}

func TestGetBookingByID_OwnerAndAdminAllowed(t *testing.T) {
	ownerID := uuid.New()
	booking := sampleBooking(uuid.New(), ownerID, 100, 2)

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return nil, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return nil, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(newTestRepository(userRepo, vehicleRepo, bookingRepo, nil), zap.NewNop())

	// Owner
	resp, err := svc.GetBookingByID(context.Background(), booking.ID.String(), ownerID, entity.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, booking.ID.String(), resp.ID)

	// Admin (not the owner)
	resp, err = svc.GetBookingByID(context.Background(), booking.ID.String(), uuid.New(), entity.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, booking.ID.String(), resp.ID)
}

func TestGetBookingByID_ForbiddenForStranger(t *testing.T) {
	booking := sampleBooking(uuid.New(), uuid.New(), 100, 2)

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, nil, bookingRepo, nil), zap.NewNop())

	resp, err := svc.GetBookingByID(context.Background(), booking.ID.String(), uuid.New(), entity.RoleUser)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Nil(t, resp)
}

func TestGetBookingByID_NotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return nil, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, nil, bookingRepo, nil), zap.NewNop())

	_, err := svc.GetBookingByID(context.Background(), uuid.NewString(), uuid.New(), entity.RoleAdmin)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCancelBooking_RestoresAvailabilityAndDeletes(t *testing.T) {
	vehicle := sampleVehicle(false)
	booking := sampleBooking(vehicle.ID, uuid.New(), 100, 2)

	var availabilitySet *bool
	deleted := false

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
		updateAvailabilityFn: func(ctx context.Context, id uuid.UUID, available bool) error {
			availabilitySet = &available
			return nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	err := svc.CancelBooking(context.Background(), booking.ID.String(), entity.RoleAdmin)

	assert.NoError(t, err)
	assert.NotNil(t, availabilitySet)
	assert.True(t, *availabilitySet)
	assert.True(t, deleted)
}

func TestCancelBooking_VehicleGone(t *testing.T) {
	booking := sampleBooking(uuid.New(), uuid.New(), 100, 2)

	deleted := false
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return nil, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	err := svc.CancelBooking(context.Background(), booking.ID.String(), entity.RoleAdmin)

	assert.NoError(t, err)
	assert.True(t, deleted, "booking is deleted even when the vehicle is gone")
}

func TestCancelBooking_NonAdminDenied(t *testing.T) {
	booking := sampleBooking(uuid.New(), uuid.New(), 100, 2)

	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, nil, bookingRepo, nil), zap.NewNop())

	err := svc.CancelBooking(context.Background(), booking.ID.String(), entity.RoleUser)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestCancelBooking_InvalidID(t *testing.T) {
	svc := NewBookingService(newTestRepository(nil, nil, &mockBookingRepo{}, nil), zap.NewNop())

	err := svc.CancelBooking(context.Background(), "not-a-uuid", entity.RoleAdmin)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking ID")
}

func TestCancelBooking_NotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return nil, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, nil, bookingRepo, nil), zap.NewNop())

	err := svc.CancelBooking(context.Background(), uuid.NewString(), entity.RoleAdmin)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetRentalHistory_ComputesDuration(t *testing.T) {
	vehicle := sampleVehicle(false)
	user := &entity.User{
		Base: entity.Base{ID: uuid.New()},
		Name: "alice",
	}
	booking := sampleBooking(vehicle.ID, user.ID, 100, 2)

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByVehicleIDFn: func(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
			return []*entity.Booking{booking}, nil
		},
	}

	svc := NewBookingService(newTestRepository(userRepo, vehicleRepo, bookingRepo, nil), zap.NewNop())

	history, err := svc.GetRentalHistory(context.Background(), vehicle.ID.String())

	assert.NoError(t, err)
	assert.Len(t, history.RentalHistory, 1)
	entry := history.RentalHistory[0]
	assert.Equal(t, booking.ID.String(), entry.BookingID)
	assert.Equal(t, "alice", entry.User)
	assert.Equal(t, "Corolla", entry.Vehicle)
	assert.Equal(t, float64(2), entry.Duration)
	assert.Equal(t, float64(100), entry.TotalPrice)
}

func TestGetRentalHistory_EmptyIsNotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{
		findByVehicleIDFn: func(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
			return nil, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, nil, bookingRepo, nil), zap.NewNop())

	history, err := svc.GetRentalHistory(context.Background(), uuid.NewString())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no rental history")
	assert.Nil(t, history)
}

func TestGenerateRentalReport_Aggregates(t *testing.T) {
	vehicle := sampleVehicle(false)

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		aggregateFn: func(ctx context.Context, vehicleID uuid.UUID) (int64, float64, float64, error) {
			// Bookings {price:100, days:2} and {price:50, days:1}
			return 2, 150, 3, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	report, err := svc.GenerateRentalReport(context.Background(), vehicle.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), report.TotalRentals)
	assert.Equal(t, float64(150), report.TotalEarnings)
	assert.Equal(t, float64(3), report.TotalDurationInDays)
}

func TestGenerateRentalReport_ZeroBookingsIsNotFound(t *testing.T) {
	vehicle := sampleVehicle(true)

	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
	}
	bookingRepo := &mockBookingRepo{
		aggregateFn: func(ctx context.Context, vehicleID uuid.UUID) (int64, float64, float64, error) {
			return 0, 0, 0, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, bookingRepo, nil), zap.NewNop())

	report, err := svc.GenerateRentalReport(context.Background(), vehicle.ID.String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no rental data")
	assert.Nil(t, report)
}

func TestGenerateRentalReport_VehicleMissing(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return nil, nil
		},
	}

	svc := NewBookingService(newTestRepository(nil, vehicleRepo, &mockBookingRepo{}, nil), zap.NewNop())

	_, err := svc.GenerateRentalReport(context.Background(), uuid.NewString())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
