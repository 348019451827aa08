package manage_blocked_dates

import "context"

type ScheduleService interface {
	ListBlockedDates(ctx context.Context) ([]string, error)
	BlockDate(ctx context.Context, date string) error
	UnblockDate(ctx context.Context, date string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
