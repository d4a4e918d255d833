package wire

import (
	"campus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMetrics(r chi.Router, metricsHandler *adaptor.MetricsHandler) {
	// GET /api/metrics - dashboard aggregates (public)
	r.Get("/api/metrics", metricsHandler.GetMetrics)
}
