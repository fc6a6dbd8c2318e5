package availability

import "time"

// Request запрос проверки доступности номера
type Request struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Response результат проверки доступности
type Response struct {
	RoomID     int64
	CheckIn    time.Time
	CheckOut   time.Time
	Available  bool
	Nights     int
	TotalPrice float64 // стоимость проживания по текущей цене номера
}
