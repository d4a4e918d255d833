package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus-booking/internal/dto/request"
	"campus-booking/internal/dto/response"
	"campus-booking/internal/usecase"
	"campus-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned results so the handler's decode, context,
// and status-code mapping can be exercised without the admission engine.
type stubBookingService struct {
	submitResp *response.BookingResponse
	submitErr  error

	gotUserID  uuid.UUID
	gotSociety string
	gotReq     *request.CreateBookingRequest
}

func (s *stubBookingService) SubmitBooking(_ context.Context, userID uuid.UUID, society string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	s.gotUserID = userID
	s.gotSociety = society
	s.gotReq = req
	return s.submitResp, s.submitErr
}

func (s *stubBookingService) ListApproved(context.Context) ([]response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) ListUserBookings(context.Context, uuid.UUID, *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingByID(context.Context, string) (*response.BookingResponse, error) {
	return nil, nil
}

func submitRequest(t *testing.T, userID uuid.UUID, society, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		req = req.WithContext(utils.SetUserContext(req.Context(), userID, society))
	}
	return req
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()

	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestSubmitBookingHandlerCreated(t *testing.T) {
	now := time.Now()
	stub := &stubBookingService{
		submitResp: &response.BookingResponse{
			ID:          uuid.NewString(),
			EventName:   "Practice Session",
			Status:      "approved",
			SubmittedAt: now,
			ApprovedAt:  &now,
		},
	}
	handler := NewBookingHandler(stub, zap.NewNop())

	userID := uuid.New()
	body := fmt.Sprintf(`{"resourceId":%q,"eventName":"Practice Session","expectedAttendance":20,"startDateTime":"2026-09-01T10:00","endDateTime":"2026-09-01T12:00"}`,
		uuid.NewString())

	rec := httptest.NewRecorder()
	handler.SubmitBooking(rec, submitRequest(t, userID, "Tennis Club", body))

	assert.Equal(t, http.StatusCreated, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
	assert.Equal(t, "Booking created and approved successfully", envelope.Message)

	assert.Equal(t, userID, stub.gotUserID)
	assert.Equal(t, "Tennis Club", stub.gotSociety)
	require.NotNil(t, stub.gotReq)
	assert.Equal(t, "Practice Session", stub.gotReq.EventName)
	assert.Equal(t, 20, stub.gotReq.ExpectedAttendance)
}

func TestSubmitBookingHandlerRequiresAuth(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.SubmitBooking(rec, submitRequest(t, uuid.Nil, "", `{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitBookingHandlerRejectsMalformedBody(t *testing.T) {
	handler := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.SubmitBooking(rec, submitRequest(t, uuid.New(), "Tennis Club", `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitBookingHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"missing fields", usecase.ErrMissingFields, http.StatusBadRequest},
		{"capacity exceeded", fmt.Errorf("%w: expected attendance (200) exceeds resource capacity (20)", usecase.ErrCapacityExceeded), http.StatusBadRequest},
		{"invalid date format", usecase.ErrInvalidDateFormat, http.StatusBadRequest},
		{"invalid interval", usecase.ErrInvalidInterval, http.StatusBadRequest},
		{"past booking", usecase.ErrPastBooking, http.StatusBadRequest},
		{"resource unavailable", usecase.ErrResourceUnavailable, http.StatusNotFound},
		{"infrastructure failure", fmt.Errorf("persist approved booking: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBookingHandler(&stubBookingService{submitErr: tt.err}, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.SubmitBooking(rec, submitRequest(t, uuid.New(), "Tennis Club", `{"eventName":"x"}`))

			assert.Equal(t, tt.wantCode, rec.Code)

			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Status)
		})
	}
}

func TestSubmitBookingHandlerConflict(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	conflictErr := &usecase.ConflictError{
		Conflicts: []response.ConflictingBooking{{
			StartDateTime: start,
			EndDateTime:   start.Add(2 * time.Hour),
			EventName:     "Practice Session",
			Society:       "Tennis Club",
		}},
	}
	handler := NewBookingHandler(&stubBookingService{submitErr: conflictErr}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.SubmitBooking(rec, submitRequest(t, uuid.New(), "Debate Society", `{"eventName":"x"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var envelope struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Conflict            bool                          `json:"conflict"`
			ConflictingBookings []response.ConflictingBooking `json:"conflictingBookings"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	assert.False(t, envelope.Status)
	assert.Equal(t, "Booking conflict detected", envelope.Message)
	assert.True(t, envelope.Data.Conflict)
	require.Len(t, envelope.Data.ConflictingBookings, 1)
	assert.Equal(t, "Practice Session", envelope.Data.ConflictingBookings[0].EventName)
	assert.True(t, envelope.Data.ConflictingBookings[0].StartDateTime.Equal(start))
}
