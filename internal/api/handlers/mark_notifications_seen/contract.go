package mark_notifications_seen

import "context"

type NotificationService interface {
	MarkSeen(ctx context.Context, username string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
