package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/usecase"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// GetVehicles handles GET /api/vehicles (public)
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.GetVehicles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// CreateVehicle handles POST /api/vehicles (public; no admin check)
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, "success", vehicle)
}

// handleServiceError handles errors for vehicle operations
func (h *VehicleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
