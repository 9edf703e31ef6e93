package history

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/pkg/psqlbuilder"
)

const tableName = "booking_history"

var columns = []string{
	"booking_id",
	"user_id",
	"field_id",
	"slot_id",
	"slot_label",
	"booking_date",
	"is_recurring",
	"session_count",
	"total_price",
	"deposit_amount",
	"remaining_amount",
	"booking_status",
	"payment_status",
	"created_at",
}

// Repository локальная история подтвержденных бронирований.
// Записи только добавляются, повторная запись того же бронирования игнорируется.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в историю.
// Возвращает false, если запись с таким booking_id уже есть.
func (r *Repository) Append(ctx context.Context, entry *domain.HistoryEntry) (bool, error) {
	query, args, err := buildAppendQuery(entry)
	if err != nil {
		return false, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Append - rows affected: %v", ErrExecQuery, err)
	}
	return affected > 0, nil
}

// ListByUser возвращает историю пользователя, новые записи первыми
func (r *Repository) ListByUser(ctx context.Context, filter domain.HistoryFilter) ([]*domain.HistoryEntry, error) {
	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0)
	for rows.Next() {
		var (
			e             domain.HistoryEntry
			bookingStatus string
			paymentStatus string
		)
		if err := rows.Scan(
			&e.BookingID,
			&e.UserID,
			&e.FieldID,
			&e.SlotID,
			&e.SlotLabel,
			&e.BookingDate,
			&e.IsRecurring,
			&e.SessionCount,
			&e.TotalPrice,
			&e.DepositAmount,
			&e.RemainingAmount,
			&bookingStatus,
			&paymentStatus,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByUser: %v", ErrScanRow, err)
		}
		e.BookingStatus = domain.BookingStatus(bookingStatus)
		e.PaymentStatus = domain.PaymentStatus(paymentStatus)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows iteration: %v", ErrExecQuery, err)
	}

	return entries, nil
}

func buildAppendQuery(e *domain.HistoryEntry) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(columns...).
		Values(
			e.BookingID,
			e.UserID,
			e.FieldID,
			e.SlotID,
			e.SlotLabel,
			e.BookingDate,
			e.IsRecurring,
			e.SessionCount,
			e.TotalPrice,
			e.DepositAmount,
			e.RemainingAmount,
			string(e.BookingStatus),
			string(e.PaymentStatus),
			e.CreatedAt,
		).
		Suffix("ON CONFLICT (booking_id) DO NOTHING").
		ToSql()
}

func buildListQuery(filter domain.HistoryFilter) (string, []interface{}, error) {
	q := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": filter.UserID}).
		OrderBy("created_at DESC", "booking_id")

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"booking_status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	return q.ToSql()
}
