package usecase

import (
	"context"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"

	"github.com/google/uuid"
)

// --- Mock repositories (function-field style) ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findByNameFn  func(ctx context.Context, name string) (*entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return m.findByNameFn(ctx, name)
}

type mockVehicleRepo struct {
	createFn             func(ctx context.Context, vehicle *entity.Vehicle) error
	findByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	findAllFn            func(ctx context.Context) ([]*entity.Vehicle, error)
	updateAvailabilityFn func(ctx context.Context, id uuid.UUID, available bool) error
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	return m.createFn(ctx, vehicle)
}
func (m *mockVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVehicleRepo) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	return m.findAllFn(ctx)
}
func (m *mockVehicleRepo) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	return m.updateAvailabilityFn(ctx, id, available)
}

type mockBookingRepo struct {
	createFn          func(ctx context.Context, booking *entity.Booking) error
	findByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findAllFn         func(ctx context.Context) ([]*entity.Booking, error)
	findByVehicleIDFn func(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error)
	deleteFn          func(ctx context.Context, id uuid.UUID) error
	aggregateFn       func(ctx context.Context, vehicleID uuid.UUID) (int64, float64, float64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return m.findAllFn(ctx)
}
func (m *mockBookingRepo) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Booking, error) {
	return m.findByVehicleIDFn(ctx, vehicleID)
}
func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
func (m *mockBookingRepo) AggregateByVehicleID(ctx context.Context, vehicleID uuid.UUID) (int64, float64, float64, error) {
	return m.aggregateFn(ctx, vehicleID)
}

type mockReviewRepo struct {
	createFn          func(ctx context.Context, review *entity.Review) error
	findByVehicleIDFn func(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Review, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.createFn(ctx, review)
}
func (m *mockReviewRepo) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*entity.Review, error) {
	return m.findByVehicleIDFn(ctx, vehicleID)
}

// newTestRepository bundles mocks into the aggregate the services expect.
func newTestRepository(user *mockUserRepo, vehicle *mockVehicleRepo, booking *mockBookingRepo, review *mockReviewRepo) *repository.Repository {
	repo := &repository.Repository{}
	if user != nil {
		repo.User = user
	}
	if vehicle != nil {
		repo.Vehicle = vehicle
	}
	if booking != nil {
		repo.Booking = booking
	}
	if review != nil {
		repo.Review = review
	}
	return repo
}
