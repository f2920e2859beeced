package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/usecase"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBookings handles GET /api/bookings (protected; open to any
// authenticated user)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.GetBookings(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (owner or admin)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	callerRole, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID, callerID, callerRole)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// CancelBooking handles DELETE /api/bookings/{id} (admin only)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	callerRole, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID, callerRole); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled successfully", nil)
}

// GetRentalHistory handles GET /api/bookings/rental-history/{vehicleId} (admin only)
func (h *BookingHandler) GetRentalHistory(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleId")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	history, err := h.service.GetRentalHistory(r.Context(), vehicleID)
	if err != nil {
		h.handleServiceError(w, err, "get rental history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}

// GenerateRentalReport handles GET /api/bookings/rental-report/{vehicleId} (admin only)
func (h *BookingHandler) GenerateRentalReport(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "vehicleId")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	report, err := h.service.GenerateRentalReport(r.Context(), vehicleID)
	if err != nil {
		h.handleServiceError(w, err, "generate rental report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// handleServiceError handles errors for booking operations
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"),
		strings.Contains(errMsg, "no rental history"),
		strings.Contains(errMsg, "no rental data"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "access denied"):
		h.log.Warn(operation+" failed - access denied",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "not available"):
		h.log.Warn(operation+" failed - vehicle not available",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
