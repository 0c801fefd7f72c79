package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"staybook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Output: io.Discard})
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
	}{
		{
			name:       "matching secret passes",
			secret:     "s3cret",
			header:     "s3cret",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong secret rejected",
			secret:     "s3cret",
			header:     "guess",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing header rejected",
			secret:     "s3cret",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unconfigured secret locks routes",
			secret:     "",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuth(tt.secret, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.header != "" {
				req.Header.Set(AdminSecretHeader, tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized && rec.Body.String() != `{"error":"Unauthorized"}` {
				t.Errorf("body = %q, want unauthorized error body", rec.Body.String())
			}
		})
	}
}
