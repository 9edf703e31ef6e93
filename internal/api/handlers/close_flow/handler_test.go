package close_flow

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FieldBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookingflows"
)

type MockFlowService struct {
	mock.Mock
}

func (m *MockFlowService) Close(flowID string, userID int64) error {
	args := m.Called(flowID, userID)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "closed", err: nil, wantStatus: http.StatusNoContent},
		{name: "payment locked", err: bookingflows.ErrPaymentLocked, wantStatus: http.StatusLocked},
		{name: "submission in progress", err: bookingflows.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{name: "foreign flow", err: bookingflows.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "unknown flow", err: bookingflows.ErrFlowNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockFlowService)
			svc.On("Close", "flow-1", int64(42)).Return(tt.err)

			r := mux.NewRouter()
			r.Use(middleware.Auth)
			r.HandleFunc("/api/v1/flows/{flowId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/flows/flow-1", nil)
			req.Header.Set(middleware.HeaderUserID, "42")
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_RequiresUser(t *testing.T) {
	svc := new(MockFlowService)

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/flows/{flowId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/flows/flow-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
}
