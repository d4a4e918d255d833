package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-booking/internal/data/entity"
	"campus-booking/internal/data/repository"
	"campus-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceService interface {
	ListResources(ctx context.Context) ([]response.ResourceResponse, error)
	GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error)

	// Administrative operations
	SeedResources(ctx context.Context) (int, error)
	ClearBookings(ctx context.Context) (int64, error)
}

type resourceService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewResourceService(repo *repository.Repository, log *zap.Logger) ResourceService {
	return &resourceService{
		repo: repo,
		log:  log.With(zap.String("service", "resource")),
	}
}

func (s *resourceService) ListResources(ctx context.Context) ([]response.ResourceResponse, error) {
	resources, err := s.repo.Resource.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list resources", zap.Error(err))
		return nil, fmt.Errorf("list resources: %w", err)
	}

	responses := make([]response.ResourceResponse, len(resources))
	for i, resource := range resources {
		responses[i] = response.ResourceToResponse(resource)
	}

	return responses, nil
}

func (s *resourceService) GetResourceByID(ctx context.Context, resourceID string) (*response.ResourceResponse, error) {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, ErrResourceNotFound
	}

	resource, err := s.repo.Resource.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get resource %s: %w", resourceID, err)
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}

	resp := response.ResourceToResponse(resource)
	return &resp, nil
}

// SeedResources replaces the catalog with the static campus set.
func (s *resourceService) SeedResources(ctx context.Context) (int, error) {
	now := time.Now()

	resources := make([]*entity.Resource, len(campusResources))
	for i, seed := range campusResources {
		resources[i] = &entity.Resource{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:        seed.name,
			Type:        seed.resourceType,
			Capacity:    seed.capacity,
			Location:    seed.location,
			Description: seed.description,
			IsActive:    true,
		}
	}

	if err := s.repo.Resource.ReplaceAll(ctx, resources); err != nil {
		s.log.Error("Failed to seed resources", zap.Error(err))
		return 0, fmt.Errorf("seed resources: %w", err)
	}

	s.log.Info("Resources seeded", zap.Int("count", len(resources)))
	return len(resources), nil
}

// ClearBookings purges the booking ledger. Administrative reset only.
func (s *resourceService) ClearBookings(ctx context.Context) (int64, error) {
	deleted, err := s.repo.Booking.DeleteAll(ctx)
	if err != nil {
		s.log.Error("Failed to clear bookings", zap.Error(err))
		return 0, fmt.Errorf("clear bookings: %w", err)
	}

	s.log.Info("Booking ledger cleared", zap.Int64("deleted", deleted))
	return deleted, nil
}
