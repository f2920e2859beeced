package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{vehicleId} - View vehicle reviews (public)
	r.Get("/api/reviews/{vehicleId}", reviewHandler.GetReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/reviews - Create new review (authenticated users only)
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})
}
