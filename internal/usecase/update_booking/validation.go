package update_booking

import (
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.UserID < 0 {
		return fmt.Errorf("%w: userID must not be negative", ErrInvalidInput)
	}

	if req.Status != "" && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.ValidDateRange(req.CheckIn, req.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}

// validateTransition проверяет смену статуса по конечному автомату
// Сохранение текущего статуса переходом не считается
func validateTransition(from, to domain.BookingStatus) error {
	if from == to || from.CanTransitionTo(to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
