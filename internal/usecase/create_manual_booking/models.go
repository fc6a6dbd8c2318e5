package create_manual_booking

import (
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// Request запрос администратора на бронирование для гостя без учетной записи
// Цена всегда считается на сервере
type Request struct {
	RoomID        int64
	CheckIn       time.Time
	CheckOut      time.Time
	Status        *domain.BookingStatus // nil - confirmed
	GuestFullName string
}

// Response созданное бронирование и гостевая учетная запись
type Response struct {
	ID          int64
	RoomID      int64
	GuestUserID int64
	GuestName   string
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	TotalPrice  float64
	Status      string
	RoomName    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
