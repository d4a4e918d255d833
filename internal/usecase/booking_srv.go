package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"campus-booking/internal/data/entity"
	"campus-booking/internal/data/repository"
	"campus-booking/internal/dto/request"
	"campus-booking/internal/dto/response"
	"campus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// SubmitBooking decides a single admission attempt: validate, check the
	// ledger for overlap, persist the outcome. The society label is copied
	// from the submitting user onto the record.
	SubmitBooking(ctx context.Context, userID uuid.UUID, society string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Read-only queries
	ListApproved(ctx context.Context) ([]response.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	locks *resourceLocker
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		locks: newResourceLocker(),
		log:   log.With(zap.String("service", "booking")),
	}
}

// Accepted timestamp layouts: RFC 3339 from API clients, datetime-local from
// the booking form (interpreted in server-local time).
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized datetime %q", value)
}

func roundSeconds(d time.Duration) int {
	return int(math.Round(d.Seconds()))
}

func (s *bookingService) SubmitBooking(ctx context.Context, userID uuid.UUID, society string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	received := time.Now()

	// 1. Required fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, utils.FormatValidationErrors(errs))
	}

	eventName := strings.TrimSpace(req.EventName)
	if eventName == "" {
		return nil, ErrMissingFields
	}

	// 2. Resource exists and is active
	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		return nil, ErrResourceUnavailable
	}

	resource, err := s.repo.Resource.FindByID(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("look up resource %s: %w", req.ResourceID, err)
	}
	if resource == nil || !resource.IsActive {
		return nil, ErrResourceUnavailable
	}

	// 3. Capacity, checked against the catalog at submission time only
	if req.ExpectedAttendance > resource.Capacity {
		return nil, fmt.Errorf("%w: expected attendance (%d) exceeds resource capacity (%d)",
			ErrCapacityExceeded, req.ExpectedAttendance, resource.Capacity)
	}

	// 4. Timestamps parse
	start, err := parseDateTime(req.StartDateTime)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := parseDateTime(req.EndDateTime)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// 5. start < end
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	// 6. start not in the past
	if start.Before(received) {
		return nil, ErrPastBooking
	}

	// Serialize the check-then-write sequence per resource so two concurrent
	// overlapping requests cannot both be approved.
	mu := s.locks.lock(resourceID)
	defer mu.Unlock()

	conflicting, err := s.repo.Booking.FindConflicting(ctx, resourceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("check conflicts for resource %s: %w", req.ResourceID, err)
	}

	if len(conflicting) == 0 {
		now := time.Now()
		booking := &entity.Booking{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:             userID,
			ResourceID:         resourceID,
			EventName:          eventName,
			Society:            society,
			ExpectedAttendance: req.ExpectedAttendance,
			StartTime:          start,
			EndTime:            end,
			Status:             entity.BookingStatusApproved,
			HasConflict:        false,
			SubmittedAt:        now,
			ApprovedAt:         &now,
			TimeToBooking:      roundSeconds(now.Sub(received)),
		}

		// The insert re-checks overlap in its own transaction; a non-nil
		// result means another writer won a race this process couldn't see.
		raced, err := s.repo.Booking.CreateIfNoOverlap(ctx, booking)
		if err != nil {
			s.log.Error("Failed to persist approved booking",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("resource_id", req.ResourceID),
			)
			return nil, fmt.Errorf("persist approved booking: %w", err)
		}

		if raced == nil {
			s.log.Info("Booking approved",
				zap.String("booking_id", booking.ID.String()),
				zap.String("user_id", userID.String()),
				zap.String("resource", resource.Name),
				zap.Time("start", start),
				zap.Time("end", end),
				zap.Int("time_to_booking", booking.TimeToBooking),
			)
			return s.buildBookingResponse(ctx, booking), nil
		}

		conflicting = raced
	}

	// Conflict path: persist the rejected attempt so the ledger captures
	// conflict-rate metrics, then surface the competing intervals.
	now := time.Now()
	rejected := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:             userID,
		ResourceID:         resourceID,
		EventName:          eventName,
		Society:            society,
		ExpectedAttendance: req.ExpectedAttendance,
		StartTime:          start,
		EndTime:            end,
		Status:             entity.BookingStatusRejected,
		HasConflict:        true,
		SubmittedAt:        now,
		TimeToBooking:      roundSeconds(now.Sub(received)),
	}

	if err := s.repo.Booking.Create(ctx, rejected); err != nil {
		s.log.Error("Failed to persist rejected booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("resource_id", req.ResourceID),
		)
		return nil, fmt.Errorf("persist rejected booking: %w", err)
	}

	conflictErr := &ConflictError{
		Conflicts: make([]response.ConflictingBooking, len(conflicting)),
	}
	for i, c := range conflicting {
		conflictErr.Conflicts[i] = response.ConflictToResponse(c)
	}

	s.log.Info("Booking rejected with conflict",
		zap.String("booking_id", rejected.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("resource", resource.Name),
		zap.Int("conflicts", len(conflicting)),
	)

	return nil, conflictErr
}

func (s *bookingService) ListApproved(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindApproved(ctx)
	if err != nil {
		s.log.Error("Failed to list approved bookings", zap.Error(err))
		return nil, fmt.Errorf("list approved bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return responses, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := response.BookingToResponse(booking)

		// Resolve the resource for display
		resource, _ := s.repo.Resource.FindByID(ctx, booking.ResourceID)
		if resource != nil {
			resp.ResourceName = resource.Name
			resp.ResourceType = string(resource.Type)
			resp.ResourceLocation = resource.Location
		}

		responses[i] = resp
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	return response.NewPaginatedResponse(responses, page, limit, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	return s.buildBookingResponse(ctx, booking), nil
}

// buildBookingResponse resolves resource and user display fields for one
// record.
func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	resp := response.BookingToResponse(booking)

	resource, _ := s.repo.Resource.FindByID(ctx, booking.ResourceID)
	if resource != nil {
		resp.ResourceName = resource.Name
		resp.ResourceType = string(resource.Type)
		resp.ResourceLocation = resource.Location
	}

	user, _ := s.repo.User.FindByID(ctx, booking.UserID)
	if user != nil {
		resp.UserName = user.Name
		resp.UserEmail = user.Email
		resp.UserSociety = user.Society
	}

	return &resp
}
