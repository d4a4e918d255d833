package adaptor

import (
	"fmt"
	"net/http"

	"campus-booking/internal/usecase"
	"campus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	service usecase.ResourceService
	log     *zap.Logger
}

func NewResourceHandler(service usecase.ResourceService, log *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		log:     log.With(zap.String("handler", "resource")),
	}
}

// ListResources handles GET /api/resources (public)
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := h.service.ListResources(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}

// GetResourceByID handles GET /api/resources/{id} (public)
func (h *ResourceHandler) GetResourceByID(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "Resource ID is required", nil)
		return
	}

	resource, err := h.service.GetResourceByID(r.Context(), resourceID)
	if err != nil {
		writeServiceError(w, h.log, err, "get resource by ID")
		return
	}

	utils.ResponseSuccess(w, "success", resource)
}

// SeedResources handles POST /api/seed/resources (admin reset)
func (h *ResourceHandler) SeedResources(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.SeedResources(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "seed resources")
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Successfully seeded %d resources", count), map[string]int{
		"count": count,
	})
}

// ClearBookings handles POST /api/seed/clear-bookings (admin reset)
func (h *ResourceHandler) ClearBookings(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.ClearBookings(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "clear bookings")
		return
	}

	utils.ResponseSuccess(w, "Booking data cleared", map[string]int64{
		"deleted": deleted,
	})
}
