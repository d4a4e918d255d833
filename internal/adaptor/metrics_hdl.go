package adaptor

import (
	"net/http"

	"campus-booking/internal/usecase"
	"campus-booking/pkg/utils"

	"go.uber.org/zap"
)

type MetricsHandler struct {
	service usecase.MetricsService
	log     *zap.Logger
}

func NewMetricsHandler(service usecase.MetricsService, log *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		service: service,
		log:     log.With(zap.String("handler", "metrics")),
	}
}

// GetMetrics handles GET /api/metrics (public dashboard feed)
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.GetMetrics(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "get metrics")
		return
	}

	utils.ResponseSuccess(w, "success", metrics)
}
