package response

import (
	"time"

	"campus-booking/internal/data/entity"
)

// BookingResponse is a booking record with resource and user display fields
// resolved for the caller.
type BookingResponse struct {
	ID                 string     `json:"id"`
	EventName          string     `json:"eventName"`
	Society            string     `json:"society"`
	ExpectedAttendance int        `json:"expectedAttendance"`
	StartDateTime      time.Time  `json:"startDateTime"`
	EndDateTime        time.Time  `json:"endDateTime"`
	Status             string     `json:"status"`
	HasConflict        bool       `json:"hasConflict"`
	SubmittedAt        time.Time  `json:"submittedAt"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	TimeToBooking      int        `json:"timeToBooking"`

	ResourceID       string `json:"resourceId"`
	ResourceName     string `json:"resourceName,omitempty"`
	ResourceType     string `json:"resourceType,omitempty"`
	ResourceLocation string `json:"resourceLocation,omitempty"`

	UserID      string `json:"userId"`
	UserName    string `json:"userName,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	UserSociety string `json:"userSociety,omitempty"`
}

// ConflictingBooking describes one competing interval so the caller can pick
// another slot.
type ConflictingBooking struct {
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	EventName     string    `json:"eventName"`
	Society       string    `json:"society"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                 booking.ID.String(),
		EventName:          booking.EventName,
		Society:            booking.Society,
		ExpectedAttendance: booking.ExpectedAttendance,
		StartDateTime:      booking.StartTime,
		EndDateTime:        booking.EndTime,
		Status:             string(booking.Status),
		HasConflict:        booking.HasConflict,
		SubmittedAt:        booking.SubmittedAt,
		ApprovedAt:         booking.ApprovedAt,
		TimeToBooking:      booking.TimeToBooking,
		ResourceID:         booking.ResourceID.String(),
		UserID:             booking.UserID.String(),
	}
}

func ConflictToResponse(booking *entity.Booking) ConflictingBooking {
	return ConflictingBooking{
		StartDateTime: booking.StartTime,
		EndDateTime:   booking.EndTime,
		EventName:     booking.EventName,
		Society:       booking.Society,
	}
}
