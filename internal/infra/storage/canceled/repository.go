package canceled

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/dbmetrics"
	"github.com/frizerhub/Barber-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий журнала отменённых записей (append-only)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория отменённых записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert добавляет запись в журнал отмен.
// Журнал только пополняется - записи из него никогда не удаляются
// и не читаются аллокатором слотов.
func (r *Repository) Insert(ctx context.Context, record *domain.CanceledAppointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("canceled_appointments").
		Columns(
			"original_id",
			"customer_name",
			"phone_number",
			"service",
			"appointment_time",
			"user_id",
			"canceled_by_admin",
		).
		Values(
			record.OriginalID,
			record.CustomerName,
			record.CustomerPhone,
			int(record.Service),
			record.StartTime.UTC(),
			record.OwnerUserID,
			record.CanceledByAdmin,
		).
		Suffix("RETURNING id, canceled_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var canceledAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &canceledAt)
	if err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	record.CanceledAt = canceledAt.Time
	return nil
}

// ListByDateRange получает журнал отмен за период - для отчётов оператору
func (r *Repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.CanceledAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"original_id",
		"customer_name",
		"phone_number",
		"service",
		"appointment_time",
		"user_id",
		"canceled_by_admin",
		"canceled_at",
	).
		From("canceled_appointments").
		Where(squirrel.GtOrEq{"appointment_time": from.UTC()}).
		Where(squirrel.Lt{"appointment_time": to.UTC()}).
		OrderBy("canceled_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.CanceledAppointment, 0)
	for rows.Next() {
		var record domain.CanceledAppointment
		var service int
		var startTime time.Time
		var canceledAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.OriginalID,
			&record.CustomerName,
			&record.CustomerPhone,
			&service,
			&startTime,
			&record.OwnerUserID,
			&record.CanceledByAdmin,
			&canceledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - scan row: %v", ErrScanRow, err)
		}

		record.Service = domain.ServiceType(service)
		record.StartTime = startTime.UTC()
		record.CanceledAt = canceledAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
