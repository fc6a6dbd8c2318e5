package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования гостем
type Request struct {
	UserID   int64     // ID пользователя из токена
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	RoomID     int64
	UserID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice float64
	Status     string

	// Денормализованные данные
	RoomName string

	CreatedAt time.Time
	UpdatedAt time.Time
}
