package usecase

import (
	"context"
	"fmt"
	"math"

	"campus-booking/internal/data/repository"
	"campus-booking/internal/dto/response"

	"go.uber.org/zap"
)

type MetricsService interface {
	// GetMetrics derives TSB, ASE and conflict rate from one point-in-time
	// view of the booking ledger.
	GetMetrics(ctx context.Context) (*response.MetricsResponse, error)
}

type metricsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMetricsService(repo *repository.Repository, log *zap.Logger) MetricsService {
	return &metricsService{
		repo: repo,
		log:  log.With(zap.String("service", "metrics")),
	}
}

func (s *metricsService) GetMetrics(ctx context.Context) (*response.MetricsResponse, error) {
	snapshot, err := s.repo.Booking.MetricsSnapshot(ctx)
	if err != nil {
		s.log.Error("Failed to get metrics snapshot", zap.Error(err))
		return nil, fmt.Errorf("get metrics snapshot: %w", err)
	}

	report := buildMetricsReport(snapshot)

	s.log.Info("Metrics computed",
		zap.Int("tsb_average", report.TimeToSuccessfulBooking.Average),
		zap.Float64("ase_percentage", report.ActiveSocietyEngagement.Percentage),
		zap.Float64("conflict_rate", report.ConflictRate.Percentage),
	)

	return report, nil
}

func buildMetricsReport(snapshot *repository.MetricsSnapshot) *response.MetricsResponse {
	// Mean time-to-booking over approved records that took measurable time,
	// rounded to whole seconds
	avgTSB := 0.0
	if snapshot.ApprovedWithTTB > 0 {
		avgTSB = float64(snapshot.TTBTotalSeconds) / float64(snapshot.ApprovedWithTTB)
	}

	// Share of registered users who submitted at least one booking
	ase := 0.0
	if snapshot.TotalUsers > 0 {
		ase = float64(snapshot.UsersWithBookings) / float64(snapshot.TotalUsers) * 100
	}

	// Share of attempts that hit a conflict
	cr := 0.0
	if snapshot.TotalBookings > 0 {
		cr = float64(snapshot.ConflictBookings) / float64(snapshot.TotalBookings) * 100
	}

	return &response.MetricsResponse{
		TimeToSuccessfulBooking: response.TSBMetric{
			Average:       int(math.Round(avgTSB)),
			Unit:          "seconds",
			TotalBookings: snapshot.ApprovedWithTTB,
		},
		ActiveSocietyEngagement: response.ASEMetric{
			Percentage:        math.Round(ase*100) / 100,
			UsersWithBookings: snapshot.UsersWithBookings,
			TotalUsers:        snapshot.TotalUsers,
		},
		ConflictRate: response.CRMetric{
			Percentage:       math.Round(cr*100) / 100,
			ConflictBookings: snapshot.ConflictBookings,
			TotalBookings:    snapshot.TotalBookings,
		},
	}
}
