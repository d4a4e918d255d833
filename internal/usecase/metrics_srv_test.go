package usecase

import (
	"context"
	"testing"
	"time"

	"campus-booking/internal/data/entity"
	"campus-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildMetricsReport(t *testing.T) {
	tests := []struct {
		name     string
		snapshot repository.MetricsSnapshot
		wantTSB  int
		wantASE  float64
		wantCR   float64
	}{
		{
			name: "mixed ledger",
			snapshot: repository.MetricsSnapshot{
				ApprovedWithTTB:   2,
				TTBTotalSeconds:   10, // 4s and 6s -> mean 5
				TotalUsers:        4,
				UsersWithBookings: 2,
				TotalBookings:     3,
				ConflictBookings:  1,
			},
			wantTSB: 5,
			wantASE: 50,
			wantCR:  33.33,
		},
		{
			name:     "empty ledger",
			snapshot: repository.MetricsSnapshot{},
			wantTSB:  0,
			wantASE:  0,
			wantCR:   0,
		},
		{
			name: "mean rounds to nearest second",
			snapshot: repository.MetricsSnapshot{
				ApprovedWithTTB: 3,
				TTBTotalSeconds: 8, // 2.67 -> 3
				TotalBookings:   3,
			},
			wantTSB: 3,
		},
		{
			name: "every attempt conflicted",
			snapshot: repository.MetricsSnapshot{
				TotalUsers:        2,
				UsersWithBookings: 2,
				TotalBookings:     4,
				ConflictBookings:  4,
			},
			wantTSB: 0,
			wantASE: 100,
			wantCR:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := buildMetricsReport(&tt.snapshot)

			assert.Equal(t, tt.wantTSB, report.TimeToSuccessfulBooking.Average)
			assert.Equal(t, "seconds", report.TimeToSuccessfulBooking.Unit)
			assert.InDelta(t, tt.wantASE, report.ActiveSocietyEngagement.Percentage, 0.001)
			assert.InDelta(t, tt.wantCR, report.ConflictRate.Percentage, 0.001)
		})
	}
}

func TestGetMetricsFromLedger(t *testing.T) {
	repo, bookings, _, _, _ := newTestRepository()
	service := NewMetricsService(repo, zap.NewNop())

	bookings.userCount = 4
	userA := uuid.New()
	userB := uuid.New()
	resourceID := uuid.New()

	now := time.Now()
	addBooking := func(userID uuid.UUID, status entity.BookingStatus, ttb int, hasConflict bool) {
		approvedAt := &now
		if status != entity.BookingStatusApproved {
			approvedAt = nil
		}
		bookings.bookings = append(bookings.bookings, &entity.Booking{
			BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			UserID:        userID,
			ResourceID:    resourceID,
			Status:        status,
			HasConflict:   hasConflict,
			SubmittedAt:   now,
			ApprovedAt:    approvedAt,
			TimeToBooking: ttb,
		})
	}

	addBooking(userA, entity.BookingStatusApproved, 4, false)
	addBooking(userB, entity.BookingStatusApproved, 6, false)
	addBooking(userB, entity.BookingStatusRejected, 1, true)

	report, err := service.GetMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, report.TimeToSuccessfulBooking.Average)
	assert.Equal(t, int64(2), report.TimeToSuccessfulBooking.TotalBookings)

	assert.InDelta(t, 50.0, report.ActiveSocietyEngagement.Percentage, 0.001)
	assert.Equal(t, int64(2), report.ActiveSocietyEngagement.UsersWithBookings)
	assert.Equal(t, int64(4), report.ActiveSocietyEngagement.TotalUsers)

	assert.InDelta(t, 33.33, report.ConflictRate.Percentage, 0.001)
	assert.Equal(t, int64(1), report.ConflictRate.ConflictBookings)
	assert.Equal(t, int64(3), report.ConflictRate.TotalBookings)
}
