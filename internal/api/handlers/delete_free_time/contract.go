package delete_free_time

import "context"

type FreeTimeService interface {
	Delete(ctx context.Context, userID, memberID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
