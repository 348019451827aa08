package userprofile

import (
	"context"
	"fmt"

	"github.com/frizerhub/Barber-BookingService/internal/domain"
	"github.com/frizerhub/Barber-BookingService/pkg/dbmetrics"
	"github.com/frizerhub/Barber-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий денормализованных профилей клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет имя и телефон клиента после успешного бронирования.
// Вызывается best-effort: ошибка здесь не откатывает бронирование.
func (r *Repository) Upsert(ctx context.Context, profile *domain.CustomerProfile) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_profiles").
		Columns("user_id", "name", "phone_number").
		Values(profile.UserID, profile.Name, profile.PhoneNumber).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, phone_number = EXCLUDED.phone_number, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
