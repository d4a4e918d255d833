package adaptor

import (
	"campus-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Resource *ResourceHandler
	Booking  *BookingHandler
	Metrics  *MetricsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Resource: NewResourceHandler(service.Resource, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Metrics:  NewMetricsHandler(service.Metrics, log),
	}
}
