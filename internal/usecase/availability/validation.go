package availability

import (
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.ValidDateRange(req.CheckIn, req.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}
