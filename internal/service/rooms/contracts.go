package rooms

import (
	"context"
	"io"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

// BookingCounter считает бронирования номера
type BookingCounter interface {
	CountByRoom(ctx context.Context, roomID int64) (int, error)
}

// ImageStore хранилище загруженных изображений
type ImageStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
