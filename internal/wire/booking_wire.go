package wire

import (
	"campus-booking/internal/adaptor"
	"campus-booking/internal/data/repository"
	"campus-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/bookings/all - approved bookings for the calendar view (public)
	r.Get("/api/bookings/all", bookingHandler.ListApproved)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - submit a booking for admission
		r.Post("/api/bookings", bookingHandler.SubmitBooking)

		// GET /api/bookings/my - caller's booking history
		r.Get("/api/bookings/my", bookingHandler.ListMine)

		// GET /api/bookings/{id} - single booking
		r.Get("/api/bookings/{id}", bookingHandler.GetByID)
	})
}
