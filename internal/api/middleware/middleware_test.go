package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		wantStatus int
		wantID     int64
		wantRole   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not a number", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "non-positive", userID: "0", wantStatus: http.StatusUnauthorized},
		{name: "customer", userID: "42", role: "Customer", wantStatus: http.StatusOK, wantID: 42, wantRole: "customer"},
		{name: "no role", userID: "7", wantStatus: http.StatusOK, wantID: 7, wantRole: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := GetUserID(r.Context())
				require.True(t, ok)
				gotID = id
				gotRole = GetUserRole(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/flows/x", nil)
			if tt.userID != "" {
				req.Header.Set(HeaderUserID, tt.userID)
			}
			if tt.role != "" {
				req.Header.Set(HeaderUserRole, tt.role)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantID, gotID)
			assert.Equal(t, tt.wantRole, gotRole)
		})
	}
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeHTTPMetrics struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeHTTPMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/flows/{flowId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/flows/123e4567", nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{method: http.MethodGet, route: "/api/v1/flows/{flowId}", status: http.StatusNotFound}, m.requests[0])
}
