package delete_time_block

import "context"

type TimeBlockService interface {
	Delete(ctx context.Context, id string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
