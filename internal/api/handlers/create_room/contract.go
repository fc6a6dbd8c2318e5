package create_room

import (
	"context"
	"io"

	"github.com/m04kA/HotelBookingService/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, req *models.RoomRequest, image io.Reader) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
