package announcement

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

// Repository репозиторий объявлений для страницы бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает объявление
func (r *Repository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("announcements").
		Columns("message", "starts_at", "ends_at").
		Values(a.Message, a.StartsAt.UTC(), a.EndsAt.UTC()).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	return a, nil
}

// ListActive получает объявления, действующие в указанный момент
func (r *Repository) ListActive(ctx context.Context, now time.Time) ([]*domain.Announcement, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "message", "starts_at", "ends_at", "created_at").
		From("announcements").
		Where(squirrel.LtOrEq{"starts_at": now.UTC()}).
		Where(squirrel.Gt{"ends_at": now.UTC()}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	announcements := make([]*domain.Announcement, 0)
	for rows.Next() {
		var a domain.Announcement
		var createdAt sql.NullTime

		if err := rows.Scan(&a.ID, &a.Message, &a.StartsAt, &a.EndsAt, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		announcements = append(announcements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return announcements, nil
}

// Delete удаляет объявление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("announcements").
		Where(squirrel.Eq{"id": id}).
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
		return ErrAnnouncementNotFound
	}

	return nil
}
