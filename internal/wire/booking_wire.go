package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/bookings - Create new booking (authenticated users only)
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - List all bookings (any authenticated user,
		// not admin-gated)
		r.Get("/api/bookings", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - Booking details (owner or admin)
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// GET /api/bookings/rental-history/{vehicleId} - Vehicle rental history
		r.Get("/api/bookings/rental-history/{vehicleId}", bookingHandler.GetRentalHistory)

		// GET /api/bookings/rental-report/{vehicleId} - Aggregate rental report
		r.Get("/api/bookings/rental-report/{vehicleId}", bookingHandler.GenerateRentalReport)

		// DELETE /api/bookings/{id} - Cancel (hard-delete) a booking
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})
}
