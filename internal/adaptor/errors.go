package adaptor

import (
	"errors"
	"net/http"

	"campus-booking/internal/usecase"
	"campus-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps usecase errors onto the response envelope. Validation
// rejections are 400s, missing entities 404s, an admission conflict a 409
// carrying the competing intervals; anything unrecognized is an infrastructure
// failure.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var conflictErr *usecase.ConflictError
	if errors.As(err, &conflictErr) {
		log.Warn(operation+" hit a conflict",
			zap.Int("conflicts", len(conflictErr.Conflicts)))
		utils.ResponseConflict(w, "Booking conflict detected", map[string]any{
			"conflict":            true,
			"conflictingBookings": conflictErr.Conflicts,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrMissingFields),
		errors.Is(err, usecase.ErrCapacityExceeded),
		errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidInterval),
		errors.Is(err, usecase.ErrPastBooking):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrResourceUnavailable),
		errors.Is(err, usecase.ErrResourceNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - email taken", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
