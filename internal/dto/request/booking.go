package request

// CreateBookingRequest carries one admission attempt. Timestamps arrive as
// strings (RFC 3339 or the datetime-local form the booking form submits) and
// are parsed by the admission engine so a bad format maps to its own
// rejection, distinct from a missing field.
type CreateBookingRequest struct {
	ResourceID         string `json:"resourceId" validate:"required,uuid"`
	EventName          string `json:"eventName" validate:"required"`
	ExpectedAttendance int    `json:"expectedAttendance" validate:"required,gte=1"`
	StartDateTime      string `json:"startDateTime" validate:"required"`
	EndDateTime        string `json:"endDateTime" validate:"required"`
}
