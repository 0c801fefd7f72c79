package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"staybook/internal/bookings/service"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

type mockBookingService struct {
	createFn func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	listFn   func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

func (m *mockBookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	return m.createFn(ctx, req)
}

func (m *mockBookingService) List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	return m.listFn(ctx, limit, offset)
}

func newTestRouter(svc service.BookingService) *httprouter.Router {
	h := NewBookingHandler(svc, logger.New(logger.Config{Output: io.Discard}))
	router := httprouter.New()
	h.RegisterRoutes(router)
	h.RegisterAdminRoutes(router)
	return router
}

const validBody = `{
	"homestay_id": "hs-001",
	"date": "2026-09-15",
	"time_slot": "full-day",
	"guest_name": "Dana Levi",
	"phone": "0501234567"
}`

func TestCreateReturns201WithBookingID(t *testing.T) {
	createdAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			booking := req.ToBooking()
			booking.ID = "64f000000000000000000001"
			booking.CreatedAt = createdAt
			return booking, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var resp CreateBookingResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.ID != "64f000000000000000000001" {
		t.Errorf("id = %q, want the stored booking id", resp.ID)
	}
	if !resp.CreatedAt.Equal(createdAt) {
		t.Errorf("createdAt = %v, want %v", resp.CreatedAt, createdAt)
	}
}

func TestCreateReturns400ForMalformedBody(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			t.Fatal("service called for malformed body")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader("{not json"))
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	assertErrorBody(t, rec, "Invalid request body")
}

func TestCreateReturns400ForValidationFailure(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Validation("GuestName must be at least 2", map[string]any{"field": "GuestName"})
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	assertErrorBody(t, rec, "GuestName must be at least 2")
}

func TestCreateReturns409WhenDateTaken(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Conflict(service.ConflictMessage)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	assertErrorBody(t, rec, service.ConflictMessage)
}

func TestCreateReturns500WithGenericBody(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
			return nil, apperrors.Internal("Failed to create booking", io.ErrUnexpectedEOF)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody))
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	assertErrorBody(t, rec, "Internal server error")
	if strings.Contains(rec.Body.String(), "unexpected EOF") {
		t.Error("internal cause leaked into response body")
	}
}

func TestListReturnsPaginatedBookings(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
			if limit != 5 {
				t.Errorf("limit = %d, want 5", limit)
			}
			if offset != 10 {
				t.Errorf("offset = %d, want 10", offset)
			}
			return []*model.Booking{
				{ID: "64f000000000000000000002", HomestayID: "hs-001", Date: "2026-09-15"},
			}, 37, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?limit=5&offset=10", nil)
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Data       []*model.Booking `json:"data"`
		TotalCount int64            `json:"total_count"`
		Limit      int              `json:"limit"`
		Offset     int64            `json:"offset"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalCount != 37 {
		t.Errorf("total_count = %d, want 37", resp.TotalCount)
	}
	if len(resp.Data) != 1 {
		t.Errorf("len(data) = %d, want 1", len(resp.Data))
	}
}

func TestListRejectsMalformedPagination(t *testing.T) {
	svc := &mockBookingService{
		listFn: func(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
			t.Fatal("service called for malformed pagination")
			return nil, 0, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?limit=abc", nil)
	newTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHealthReportsOKWithTimestamp(t *testing.T) {
	h := NewHealthHandler(nil, logger.New(logger.Config{Output: io.Discard}))
	router := httprouter.New()
	router.GET("/health", h.Health)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("ok = false, want true")
	}
	if resp.TS.IsZero() {
		t.Error("ts missing from health response")
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, wantError string) {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rec.Body.String(), err)
	}
	if resp.Error != wantError {
		t.Errorf("error = %q, want %q", resp.Error, wantError)
	}
}
