package create_manual_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// В отличие от гостевого бронирования, дата заезда в прошлом допустима
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.GuestFullName)
	if name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.ValidDateRange(req.CheckIn, req.CheckOut) {
		return ErrInvalidDateRange
	}

	return nil
}
