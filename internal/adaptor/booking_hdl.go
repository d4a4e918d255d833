package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-booking/internal/dto/request"
	"campus-booking/internal/usecase"
	"campus-booking/pkg/utils"

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

// SubmitBooking handles POST /api/bookings (protected)
func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	society, _ := utils.GetSocietyFromContext(r.Context())

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.SubmitBooking(r.Context(), userID, society, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "submit booking")
		return
	}

	utils.ResponseCreated(w, "Booking created and approved successfully", booking)
}

// ListApproved handles GET /api/bookings/all (public calendar feed)
func (h *BookingHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListApproved(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list approved bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListMine handles GET /api/bookings/my (protected)
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListUserBookings(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
