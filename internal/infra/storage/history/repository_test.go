package history

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
)

type fakeResult struct {
	affected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, nil }

type fakeExecutor struct {
	query   string
	args    []interface{}
	result  sql.Result
	execErr error
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	return f.result, f.execErr
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func testEntry() *domain.HistoryEntry {
	return &domain.HistoryEntry{
		BookingID:       "b-1",
		UserID:          42,
		FieldID:         "f-1",
		SlotID:          "slot-18",
		SlotLabel:       "18:00-19:00",
		BookingDate:     time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		IsRecurring:     true,
		SessionCount:    8,
		TotalPrice:      1_440_000,
		DepositAmount:   432_000,
		RemainingAmount: 1_008_000,
		BookingStatus:   domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		CreatedAt:       time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC),
	}
}

func TestAppend(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 1}}
	repo := NewRepository(db)

	inserted, err := repo.Append(context.Background(), testEntry())
	require.NoError(t, err)
	assert.True(t, inserted)

	assert.Contains(t, db.query, "INSERT INTO booking_history")
	assert.Contains(t, db.query, "ON CONFLICT (booking_id) DO NOTHING")
	assert.Contains(t, db.query, "$14")
	require.Len(t, db.args, len(columns))
	assert.Equal(t, "b-1", db.args[0])
	assert.Equal(t, "pending", db.args[11])
}

func TestAppend_Duplicate(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 0}}
	repo := NewRepository(db)

	inserted, err := repo.Append(context.Background(), testEntry())
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestAppend_ExecError(t *testing.T) {
	db := &fakeExecutor{execErr: errors.New("connection reset")}
	repo := NewRepository(db)

	_, err := repo.Append(context.Background(), testEntry())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestBuildListQuery(t *testing.T) {
	query, args, err := buildListQuery(domain.HistoryFilter{UserID: 42, Limit: 20, Offset: 40})
	require.NoError(t, err)

	assert.Contains(t, query, "FROM booking_history WHERE user_id = $1")
	assert.Contains(t, query, "ORDER BY created_at DESC, booking_id")
	assert.Contains(t, query, "LIMIT 20 OFFSET 40")
	assert.Equal(t, []interface{}{int64(42)}, args)

	status := domain.StatusConfirmed
	query, args, err = buildListQuery(domain.HistoryFilter{UserID: 42, Status: &status})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE user_id = $1 AND booking_status = $2")
	assert.NotContains(t, query, "LIMIT")
	assert.Equal(t, []interface{}{int64(42), "confirmed"}, args)
}

func TestListByUser_QueryError(t *testing.T) {
	repo := NewRepository(&fakeExecutor{})

	_, err := repo.ListByUser(context.Background(), domain.HistoryFilter{UserID: 42, Limit: 10})
	assert.ErrorIs(t, err, ErrExecQuery)
}
