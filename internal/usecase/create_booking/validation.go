package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет, что заезд не раньше сегодняшнего дня и выезд позже заезда
func validateDates(checkIn, checkOut, now time.Time) error {
	if domain.DateOnly(checkIn).Before(domain.DateOnly(now)) {
		return fmt.Errorf("%w: check-in date cannot be in the past", ErrInvalidDateRange)
	}

	if !domain.ValidDateRange(checkIn, checkOut) {
		return fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidDateRange)
	}

	return nil
}
