package get_rooms

import (
	"context"

	"github.com/m04kA/HotelBookingService/internal/service/rooms/models"
)

type RoomService interface {
	GetAll(ctx context.Context) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
