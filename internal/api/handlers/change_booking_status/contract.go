package change_booking_status

import "context"

type BookingService interface {
	Approve(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
