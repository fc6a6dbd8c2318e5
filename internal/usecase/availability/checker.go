package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// Checker проверяет, свободен ли номер на интервал [checkIn, checkOut)
// Вызывающий код отвечает за проверку checkOut > checkIn.
// Внутри транзакции репозиторий блокирует прочитанные бронирования (FOR UPDATE)
type Checker struct {
	bookingRepo BookingRepository
}

// NewChecker создает проверку доступности
func NewChecker(bookingRepo BookingRepository) *Checker {
	return &Checker{bookingRepo: bookingRepo}
}

// IsAvailable возвращает false, если хотя бы одно активное бронирование номера пересекается с интервалом
// excludingBookingID исключает бронирование из проверки (редактирование самого себя)
func (c *Checker) IsAvailable(
	ctx context.Context,
	roomID int64,
	checkIn, checkOut time.Time,
	excludingBookingID *int64,
) (bool, error) {
	bookings, err := c.bookingRepo.GetActiveByRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - get active bookings: %w", ErrInternal, err)
	}

	return !hasOverlap(bookings, domain.DateOnly(checkIn), domain.DateOnly(checkOut), excludingBookingID), nil
}

func hasOverlap(bookings []*domain.Booking, checkIn, checkOut time.Time, excludingBookingID *int64) bool {
	for _, b := range bookings {
		if excludingBookingID != nil && b.ID == *excludingBookingID {
			continue
		}
		// Репозиторий уже отфильтровал статусы, но не полагаемся на это
		if !b.IsActive() {
			continue
		}
		if domain.Overlaps(domain.DateOnly(b.CheckInDate), domain.DateOnly(b.CheckOutDate), checkIn, checkOut) {
			return true
		}
	}
	return false
}
