package bookingflows

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bankaccounts"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/flow"
	"github.com/m04kA/SMC-FieldBookingService/pkg/ptr"
)

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) Lookup(ctx context.Context, accountID, ownerID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *flow.Machine, *MockAccounts) {
	t.Helper()

	registry := flow.NewRegistry(0, nil)
	machine := flow.NewMachine("flow-1", &domain.BookingDraft{
		UserID:    42,
		FieldID:   "f-1",
		SlotID:    "slot-18",
		Date:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		BasePrice: 100_000,
		OwnerID:   "owner-1",
	}, nopLogger{}, flow.WithCountdown(false))
	require.NoError(t, registry.Add(machine))

	accounts := new(MockAccounts)
	return NewService(registry, accounts, nopLogger{}), machine, accounts
}

func enterPayment(t *testing.T, m *flow.Machine) {
	t.Helper()
	_, err := m.EnterPayment(&domain.BookingRecord{BookingID: "b-1", QRArtifact: "data:image/png;base64,AAA"})
	require.NoError(t, err)
}

func TestGet_Access(t *testing.T) {
	svc, _, _ := newService(t)

	snap, err := svc.Get("flow-1", 42)
	require.NoError(t, err)
	assert.Equal(t, "flow-1", snap.FlowID)

	_, err = svc.Get("flow-1", 7)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get("missing", 42)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestUpdateDraft(t *testing.T) {
	svc, machine, _ := newService(t)

	snap, err := svc.UpdateDraft("flow-1", 42, flow.DraftPatch{BasePrice: ptr.Ptr(int64(150_000))})
	require.NoError(t, err)
	assert.Equal(t, int64(150_000), snap.Draft.Pricing.Total)

	_, err = svc.UpdateDraft("flow-1", 42, flow.DraftPatch{WeekCount: ptr.Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	enterPayment(t, machine)
	_, err = svc.UpdateDraft("flow-1", 42, flow.DraftPatch{BasePrice: ptr.Ptr(int64(1))})
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestDismissAndClose_LockedDuringPayment(t *testing.T) {
	svc, machine, _ := newService(t)
	enterPayment(t, machine)

	assert.ErrorIs(t, svc.Dismiss("flow-1", 42), ErrPaymentLocked)
	assert.ErrorIs(t, svc.Close("flow-1", 42), ErrPaymentLocked)

	_, _, err := svc.CancelPayment("flow-1", 42, false)
	assert.ErrorIs(t, err, ErrCancelNotConfirmed)

	snap, cancelled, err := svc.CancelPayment("flow-1", 42, true)
	require.NoError(t, err)
	assert.Equal(t, flow.StepDetails, snap.Step)
	assert.Equal(t, "b-1", cancelled.BookingID)

	assert.NoError(t, svc.Dismiss("flow-1", 42))
	assert.NoError(t, svc.Close("flow-1", 42))

	_, err = svc.Get("flow-1", 42)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestDismissAndClose_RefusedWhileSubmitting(t *testing.T) {
	svc, machine, _ := newService(t)

	_, release, err := machine.BeginSubmission()
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Dismiss("flow-1", 42), ErrSubmissionInProgress)
	assert.ErrorIs(t, svc.Close("flow-1", 42), ErrSubmissionInProgress)

	enterPayment(t, machine)
	release()

	snap, err := svc.Get("flow-1", 42)
	require.NoError(t, err)
	assert.Equal(t, flow.StepPayment, snap.Step)
	assert.Equal(t, "b-1", snap.Record.BookingID)
}

func TestCancelPayment_NotOnPaymentStep(t *testing.T) {
	svc, _, _ := newService(t)

	_, _, err := svc.CancelPayment("flow-1", 42, true)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestPaymentAccount(t *testing.T) {
	svc, machine, accounts := newService(t)
	ctx := context.Background()

	_, err := svc.PaymentAccount(ctx, "flow-1", 42)
	assert.ErrorIs(t, err, ErrInvalidStep)

	enterPayment(t, machine)

	accounts.On("Lookup", mock.Anything, "", "owner-1").
		Return(&domain.BankAccount{ID: "a-1", BankName: "Bank"}, nil).Once()
	account, err := svc.PaymentAccount(ctx, "flow-1", 42)
	require.NoError(t, err)
	assert.Equal(t, "Bank", account.BankName)

	accounts.On("Lookup", mock.Anything, "", "owner-1").
		Return(nil, bankaccounts.ErrBankAccountNotFound).Once()
	_, err = svc.PaymentAccount(ctx, "flow-1", 42)
	assert.ErrorIs(t, err, ErrBankAccountNotFound)

	accounts.On("Lookup", mock.Anything, "", "owner-1").
		Return(nil, errors.New("boom")).Once()
	_, err = svc.PaymentAccount(ctx, "flow-1", 42)
	assert.ErrorIs(t, err, ErrInternal)

	accounts.AssertExpectations(t)
}
