package open_flow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
)

type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) Add(machine *flow.Machine) error {
	args := m.Called(machine)
	return args.Error(0)
}

type fixedIDs struct{ id string }

func (f fixedIDs) NewID() string { return f.id }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		UserID:    42,
		FieldID:   "f-1",
		SlotID:    "slot-18",
		SlotLabel: "18:00-19:00",
		Date:      time.Date(2025, 10, 20, 14, 30, 0, 0, time.UTC),
		BasePrice: 200_000,
	}
}

func TestExecute_Success(t *testing.T) {
	registry := new(MockRegistry)
	uc := NewUseCase(registry, nopLogger{}, flow.WithCountdown(false))
	uc.ids = fixedIDs{id: "flow-1"}

	registry.On("Add", mock.MatchedBy(func(m *flow.Machine) bool { return m.ID() == "flow-1" })).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "flow-1", resp.Flow.FlowID)
	assert.Equal(t, flow.StepDetails, resp.Flow.Step)
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), resp.Flow.Draft.Date)
	assert.Equal(t, int64(200_000), resp.Flow.Draft.Pricing.Total)
	assert.Equal(t, int64(60_000), resp.Flow.Draft.Pricing.DepositAmount)
	registry.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "no user", mutate: func(r *Request) { r.UserID = 0 }, wantErr: ErrUserRequired},
		{name: "no field", mutate: func(r *Request) { r.FieldID = "" }, wantErr: ErrInvalidInput},
		{name: "no slot", mutate: func(r *Request) { r.SlotID = "" }, wantErr: ErrInvalidInput},
		{name: "no date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "negative price", mutate: func(r *Request) { r.BasePrice = -1 }, wantErr: ErrInvalidInput},
		{name: "price above limit", mutate: func(r *Request) { r.BasePrice = domain.MaxBasePrice + 1 }, wantErr: ErrInvalidInput},
		{name: "negative deposit min", mutate: func(r *Request) { r.DepositPolicy.Min = -1 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := new(MockRegistry)
			uc := NewUseCase(registry, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			registry.AssertNotCalled(t, "Add", mock.Anything)
		})
	}
}

func TestExecute_RegistryErrors(t *testing.T) {
	registry := new(MockRegistry)
	uc := NewUseCase(registry, nopLogger{})

	registry.On("Add", mock.Anything).Return(flow.ErrTooManyFlows).Once()
	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooManyFlows)

	registry.On("Add", mock.Anything).Return(errors.New("boom")).Once()
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUUIDGenerator(t *testing.T) {
	id := UUIDGenerator{}.NewID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}
