package usecase

import (
	"campus-booking/internal/data/repository"
	"campus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Resource ResourceService
	Booking  BookingService
	Metrics  MetricsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Resource: NewResourceService(repo, log),
		Booking:  NewBookingService(repo, log),
		Metrics:  NewMetricsService(repo, log),
	}
}
