package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"campus-booking/internal/data/entity"
	"campus-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. The booking fake reproduces the store's
// contract, including the transactional overlap re-check in CreateIfNoOverlap.

type fakeResourceRepo struct {
	mu        sync.Mutex
	resources map[uuid.UUID]*entity.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: make(map[uuid.UUID]*entity.Resource)}
}

func (f *fakeResourceRepo) add(r *entity.Resource) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources[r.ID] = r
}

func (f *fakeResourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resources[id], nil
}

func (f *fakeResourceRepo) FindAllActive(_ context.Context) ([]*entity.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var active []*entity.Resource
	for _, r := range f.resources {
		if r.IsActive {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })
	return active, nil
}

func (f *fakeResourceRepo) ReplaceAll(_ context.Context, resources []*entity.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resources = make(map[uuid.UUID]*entity.Resource)
	for _, r := range resources {
		f.resources[r.ID] = r
	}
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.users)), nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking

	// userCount feeds the metrics snapshot; the real snapshot reads the
	// users table directly.
	userCount int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) overlappingLocked(resourceID uuid.UUID, start, end time.Time) []*entity.Booking {
	var conflicting []*entity.Booking
	for _, b := range f.bookings {
		if b.ResourceID == resourceID && b.Status == entity.BookingStatusApproved && b.Overlaps(start, end) {
			conflicting = append(conflicting, b)
		}
	}
	sort.Slice(conflicting, func(i, j int) bool {
		return conflicting[i].StartTime.Before(conflicting[j].StartTime)
	})
	return conflicting
}

func (f *fakeBookingRepo) FindConflicting(_ context.Context, resourceID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlappingLocked(resourceID, start, end), nil
}

func (f *fakeBookingRepo) CreateIfNoOverlap(_ context.Context, booking *entity.Booking) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if conflicting := f.overlappingLocked(booking.ResourceID, booking.StartTime, booking.EndTime); len(conflicting) > 0 {
		return conflicting, nil
	}
	f.bookings = append(f.bookings, booking)
	return nil, nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindApproved(_ context.Context) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var approved []*entity.Booking
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusApproved {
			approved = append(approved, b)
		}
	}
	sort.Slice(approved, func(i, j int) bool {
		return approved[i].StartTime.Before(approved[j].StartTime)
	})
	return approved, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var mine []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		return mine[i].StartTime.After(mine[j].StartTime)
	})

	if offset >= len(mine) {
		return nil, nil
	}
	mine = mine[offset:]
	if limit < len(mine) {
		mine = mine[:limit]
	}
	return mine, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, b := range f.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) MetricsSnapshot(_ context.Context) (*repository.MetricsSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := &repository.MetricsSnapshot{
		TotalUsers:    f.userCount,
		TotalBookings: int64(len(f.bookings)),
	}

	owners := make(map[uuid.UUID]bool)
	for _, b := range f.bookings {
		owners[b.UserID] = true
		if b.HasConflict {
			snapshot.ConflictBookings++
		}
		if b.Status == entity.BookingStatusApproved && b.TimeToBooking > 0 {
			snapshot.ApprovedWithTTB++
			snapshot.TTBTotalSeconds += int64(b.TimeToBooking)
		}
	}
	snapshot.UsersWithBookings = int64(len(owners))

	return snapshot, nil
}

func (f *fakeBookingRepo) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	deleted := int64(len(f.bookings))
	f.bookings = nil
	return deleted, nil
}

func (f *fakeBookingRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func newTestRepository() (*repository.Repository, *fakeBookingRepo, *fakeResourceRepo, *fakeUserRepo, *fakeSessionRepo) {
	bookings := newFakeBookingRepo()
	resources := newFakeResourceRepo()
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()

	repo := &repository.Repository{
		User:     users,
		Session:  sessions,
		Resource: resources,
		Booking:  bookings,
	}

	return repo, bookings, resources, users, sessions
}
