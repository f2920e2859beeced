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

type BookingService interface {
	// Authenticated endpoints
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string, callerID uuid.UUID, callerRole entity.UserRole) (*response.BookingResponse, error)

	// Admin endpoints
	CancelBooking(ctx context.Context, bookingID string, callerRole entity.UserRole) error
	GetRentalHistory(ctx context.Context, vehicleID string) (*response.RentalHistoryResponse, error)
	GenerateRentalReport(ctx context.Context, vehicleID string) (*response.RentalReportResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
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

	// Parse dates
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}

	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("invalid date range: end date before start date")
	}

	// Vehicle must exist and be available
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		s.log.Error("Failed to check vehicle", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if vehicle == nil || !vehicle.Available {
		return nil, fmt.Errorf("vehicle not available")
	}

	// Create booking entity
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VehicleID:  vehicleID,
		UserID:     userUUID,
		Approved:   false,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalPrice: req.TotalPrice,
	}

	// Save booking
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// Mark vehicle unavailable. The two writes are sequential, not
	// transactional; a concurrent request can still double-book.
	if err := s.repo.Vehicle.UpdateAvailability(ctx, vehicleID, false); err != nil {
		// Rollback: delete booking
		if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
			s.log.Error("Failed to roll back booking after availability update failure",
				zap.Error(delErr),
				zap.String("booking_id", booking.ID.String()),
				zap.String("vehicle_id", req.VehicleID),
			)
		}
		s.log.Error("Failed to update vehicle availability",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("update vehicle availability: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("vehicle_id", req.VehicleID),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, vehicle, nil)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = s.composeBookingView(ctx, booking)
	}

	s.log.Info("Bookings retrieved", zap.Int("count", len(bookings)))
	return bookingResponses, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string, callerID uuid.UUID, callerRole entity.UserRole) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Owner or admin only
	if booking.UserID != callerID && !callerRole.IsAdmin() {
		s.log.Warn("Booking access denied",
			zap.String("booking_id", bookingID),
			zap.String("caller_id", callerID.String()),
			zap.String("caller_role", string(callerRole)),
		)
		return nil, fmt.Errorf("access denied")
	}

	resp := s.composeBookingView(ctx, booking)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, callerRole entity.UserRole) error {
	// Validate booking ID format
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	// Only admins cancel bookings
	if !callerRole.IsAdmin() {
		return fmt.Errorf("access denied: admins only")
	}

	// Restore vehicle availability if the vehicle still exists
	vehicle, err := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	if err != nil {
		s.log.Error("Failed to find vehicle for cancellation",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("find vehicle: %w", err)
	}
	if vehicle != nil {
		if err := s.repo.Vehicle.UpdateAvailability(ctx, vehicle.ID, true); err != nil {
			s.log.Error("Failed to restore vehicle availability",
				zap.Error(err),
				zap.String("vehicle_id", vehicle.ID.String()),
			)
			return fmt.Errorf("restore vehicle availability: %w", err)
		}
	}

	// Hard delete, no audit trail
	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("vehicle_id", booking.VehicleID.String()),
	)

	return nil
}

func (s *bookingService) GetRentalHistory(ctx context.Context, vehicleID string) (*response.RentalHistoryResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	bookings, err := s.repo.Booking.FindByVehicleID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get rental history", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("get rental history: %w", err)
	}

	// Empty history is an error, not an empty result
	if len(bookings) == 0 {
		return nil, fmt.Errorf("no rental history found for this vehicle")
	}

	entries := make([]response.RentalHistoryEntry, len(bookings))
	for i, booking := range bookings {
		var userName, vehicleModel string

		user, _ := s.repo.User.FindByID(ctx, booking.UserID)
		if user != nil {
			userName = user.Name
		}

		vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
		if vehicle != nil {
			vehicleModel = vehicle.Model
		}

		entries[i] = response.RentalHistoryEntry{
			BookingID:  booking.ID.String(),
			User:       userName,
			Vehicle:    vehicleModel,
			StartDate:  booking.StartDate.Format("2006-01-02"),
			EndDate:    booking.EndDate.Format("2006-01-02"),
			Duration:   booking.DurationDays(),
			TotalPrice: booking.TotalPrice,
		}
	}

	s.log.Info("Rental history retrieved",
		zap.String("vehicle_id", vehicleID),
		zap.Int("count", len(entries)),
	)

	return &response.RentalHistoryResponse{RentalHistory: entries}, nil
}

func (s *bookingService) GenerateRentalReport(ctx context.Context, vehicleID string) (*response.RentalReportResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	// Vehicle must exist before aggregating
	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to check vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("check vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	totalRentals, totalEarnings, totalDurationDays, err := s.repo.Booking.AggregateByVehicleID(ctx, id)
	if err != nil {
		s.log.Error("Failed to aggregate rentals", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("generate rental report: %w", err)
	}

	// A zero-result aggregate is treated as absence, not as zeros
	if totalRentals == 0 {
		return nil, fmt.Errorf("no rental data available for this vehicle")
	}

	s.log.Info("Rental report generated",
		zap.String("vehicle_id", vehicleID),
		zap.Int64("total_rentals", totalRentals),
		zap.Float64("total_earnings", totalEarnings),
		zap.Float64("total_duration_days", totalDurationDays),
	)

	return &response.RentalReportResponse{
		TotalRentals:        totalRentals,
		TotalEarnings:       totalEarnings,
		TotalDurationInDays: totalDurationDays,
	}, nil
}

// ==================== HELPER METHODS ====================

// composeBookingView fetches the related vehicle and user explicitly
// and attaches their sanitized views to the booking.
func (s *bookingService) composeBookingView(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	vehicle, _ := s.repo.Vehicle.FindByID(ctx, booking.VehicleID)
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	return response.BookingToResponse(booking, vehicle, user)
}
