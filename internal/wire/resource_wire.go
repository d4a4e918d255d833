package wire

import (
	"campus-booking/internal/adaptor"
	"campus-booking/internal/data/repository"
	"campus-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireResource(
	r chi.Router,
	resourceHandler *adaptor.ResourceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public catalog
	r.Get("/api/resources", resourceHandler.ListResources)
	r.Get("/api/resources/{id}", resourceHandler.GetResourceByID)

	// Administrative reset endpoints
	r.Route("/api/seed", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/resources", resourceHandler.SeedResources)
		r.Post("/clear-bookings", resourceHandler.ClearBookings)
	})
}
