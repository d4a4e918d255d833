package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// Every admission resolves synchronously, so only the two terminal states
// exist. Records never transition after creation.
const (
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

type Booking struct {
	BaseSimple
	UserID             uuid.UUID     `db:"user_id"`
	ResourceID         uuid.UUID     `db:"resource_id"`
	EventName          string        `db:"event_name"`
	Society            string        `db:"society"`
	ExpectedAttendance int           `db:"expected_attendance"`
	StartTime          time.Time     `db:"start_time"`
	EndTime            time.Time     `db:"end_time"`
	Status             BookingStatus `db:"status"`
	HasConflict        bool          `db:"has_conflict"`
	SubmittedAt        time.Time     `db:"submitted_at"`
	ApprovedAt         *time.Time    `db:"approved_at"`
	TimeToBooking      int           `db:"time_to_booking"`
}

// Overlaps reports whether the booking's half-open interval [start, end)
// intersects the given one. Touching endpoints do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
