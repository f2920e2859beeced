package wire

import (
	"vehicle-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVehicle(r chi.Router, vehicleHandler *adaptor.VehicleHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vehicles - List all vehicles (public)
	r.Get("/api/vehicles", vehicleHandler.GetVehicles)

	// POST /api/vehicles - Create vehicle (no authorization required)
	r.Post("/api/vehicles", vehicleHandler.CreateVehicle)
}
