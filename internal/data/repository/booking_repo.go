package repository

import (
	"context"
	"fmt"
	"time"

	"campus-booking/internal/data/entity"
	"campus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, user_id, resource_id, event_name, society, expected_attendance,
		start_time, end_time, status, has_conflict, submitted_at, approved_at, time_to_booking, created_at`

// MetricsSnapshot holds every aggregate the metrics report needs, all counted
// by a single statement so one report never mixes scan instants.
type MetricsSnapshot struct {
	ApprovedWithTTB   int64
	TTBTotalSeconds   int64
	TotalUsers        int64
	UsersWithBookings int64
	TotalBookings     int64
	ConflictBookings  int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindApproved(ctx context.Context) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Business queries
	FindConflicting(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*entity.Booking, error)
	CreateIfNoOverlap(ctx context.Context, booking *entity.Booking) ([]*entity.Booking, error)
	MetricsSnapshot(ctx context.Context) (*MetricsSnapshot, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query, bookingArgs(booking)...)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("resource_id", booking.ResourceID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

// CreateIfNoOverlap inserts an approved booking only if no approved booking on
// the same resource overlaps its half-open interval. Check and insert run in
// one transaction, so a storage failure never leaves a half-written record.
// When the insert is skipped the overlapping bookings are returned instead.
func (r *bookingRepository) CreateIfNoOverlap(ctx context.Context, booking *entity.Booking) ([]*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND status = 'approved'
		  AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`

	rows, err := tx.Query(ctx, query, booking.ResourceID, booking.StartTime, booking.EndTime)
	if err != nil {
		r.log.Error("Failed to check overlap before insert",
			zap.Error(err),
			zap.String("resource_id", booking.ResourceID.String()),
		)
		return nil, fmt.Errorf("check overlap for resource %s: %w", booking.ResourceID.String(), err)
	}

	conflicting, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if len(conflicting) > 0 {
		return conflicting, nil
	}

	insert := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	if _, err := tx.Exec(ctx, insert, bookingArgs(booking)...); err != nil {
		r.log.Error("Failed to insert approved booking",
			zap.Error(err),
			zap.String("resource_id", booking.ResourceID.String()),
		)
		return nil, fmt.Errorf("insert approved booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking insert: %w", err)
	}

	return nil, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(bookingDests(&booking)...)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindApproved(ctx context.Context) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'approved'
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find approved bookings", zap.Error(err))
		return nil, fmt.Errorf("find approved bookings: %w", err)
	}

	return scanBookings(rows)
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return scanBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

// FindConflicting returns approved bookings on the resource whose half-open
// interval overlaps [start, end). A booking ending exactly at start (or
// starting exactly at end) does not count.
func (r *bookingRepository) FindConflicting(ctx context.Context, resourceID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE resource_id = $1 AND status = 'approved'
		  AND start_time < $3 AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, resourceID, start, end)
	if err != nil {
		r.log.Error("Failed to find conflicting bookings",
			zap.Error(err),
			zap.String("resource_id", resourceID.String()),
		)
		return nil, fmt.Errorf("find conflicting bookings for resource %s: %w", resourceID.String(), err)
	}

	return scanBookings(rows)
}

func (r *bookingRepository) MetricsSnapshot(ctx context.Context) (*MetricsSnapshot, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM bookings WHERE status = 'approved' AND time_to_booking > 0),
			(SELECT COALESCE(SUM(time_to_booking), 0) FROM bookings WHERE status = 'approved' AND time_to_booking > 0),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(DISTINCT user_id) FROM bookings),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE has_conflict)
	`

	var snapshot MetricsSnapshot
	err := r.db.QueryRow(ctx, query).Scan(
		&snapshot.ApprovedWithTTB,
		&snapshot.TTBTotalSeconds,
		&snapshot.TotalUsers,
		&snapshot.UsersWithBookings,
		&snapshot.TotalBookings,
		&snapshot.ConflictBookings,
	)
	if err != nil {
		r.log.Error("Failed to read metrics snapshot", zap.Error(err))
		return nil, fmt.Errorf("read metrics snapshot: %w", err)
	}

	return &snapshot, nil
}

// DeleteAll purges the whole ledger. Administrative reset, not part of the
// admission lifecycle.
func (r *bookingRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings`)
	if err != nil {
		r.log.Error("Failed to clear bookings", zap.Error(err))
		return 0, fmt.Errorf("clear bookings: %w", err)
	}

	deleted := result.RowsAffected()
	r.log.Info("Bookings cleared", zap.Int64("deleted", deleted))
	return deleted, nil
}

func bookingArgs(booking *entity.Booking) []any {
	return []any{
		booking.ID,
		booking.UserID,
		booking.ResourceID,
		booking.EventName,
		booking.Society,
		booking.ExpectedAttendance,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.HasConflict,
		booking.SubmittedAt,
		booking.ApprovedAt,
		booking.TimeToBooking,
		booking.CreatedAt,
	}
}

func bookingDests(booking *entity.Booking) []any {
	return []any{
		&booking.ID,
		&booking.UserID,
		&booking.ResourceID,
		&booking.EventName,
		&booking.Society,
		&booking.ExpectedAttendance,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.HasConflict,
		&booking.SubmittedAt,
		&booking.ApprovedAt,
		&booking.TimeToBooking,
		&booking.CreatedAt,
	}
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := rows.Scan(bookingDests(&booking)...); err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}
