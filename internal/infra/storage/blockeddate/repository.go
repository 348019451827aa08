package blockeddate

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/dbmetrics"
	"github.com/frizerhub/Barber-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий заблокированных дат (отпуска, праздники)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListFrom получает все заблокированные даты начиная с указанной
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From("blocked_dates").
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListFrom - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, domain.BlockedDate{Date: date})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFrom - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Create блокирует дату. Повторная блокировка той же даты не является ошибкой.
func (r *Repository) Create(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("date").
		Values(date.Format(domain.DateFormat)).
		Suffix("ON CONFLICT (date) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete разблокирует дату
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDateNotFound
	}

	return nil
}
