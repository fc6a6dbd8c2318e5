package get_dashboard

import (
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// Response данные панели администратора
type Response struct {
	Today    time.Time
	Stats    domain.DashboardStats
	Latest   []*domain.Booking
	Calendar *domain.Calendar
}
