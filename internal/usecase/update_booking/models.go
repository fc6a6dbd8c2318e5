package update_booking

import (
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// Request полная перезапись бронирования администратором
type Request struct {
	ID       int64
	RoomID   int64
	UserID   int64 // 0 - оставить владельца
	CheckIn  time.Time
	CheckOut time.Time
	Status   domain.BookingStatus // пусто - оставить статус
}

// Response бронирование после изменения
type Response struct {
	ID         int64
	RoomID     int64
	UserID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice float64
	Status     string
	RoomName   string
}
