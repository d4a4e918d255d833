package usecase

import (
	"errors"

	"campus-booking/internal/dto/response"
)

// Admission rejections. Each precondition failure is its own value so the
// handler layer can map it without sniffing message text.
var (
	ErrMissingFields       = errors.New("please provide all required fields")
	ErrResourceUnavailable = errors.New("resource not found or inactive")
	ErrCapacityExceeded    = errors.New("expected attendance exceeds resource capacity")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrInvalidInterval     = errors.New("end date must be after start date")
	ErrPastBooking         = errors.New("cannot book in the past")
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// ConflictError is returned when the requested interval overlaps approved
// bookings on the same resource. Unlike the validation rejections the attempt
// has already been persisted (as a rejected record) by the time this surfaces.
type ConflictError struct {
	Conflicts []response.ConflictingBooking
}

func (e *ConflictError) Error() string {
	return "booking conflict detected"
}
