package get_bookings

import (
	"context"

	"github.com/m04kA/HotelBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetAll(ctx context.Context, query *models.ListQuery) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
