package check_availability

import (
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID     int64   `json:"roomId"`
	CheckIn    string  `json:"checkInDate"`
	CheckOut   string  `json:"checkOutDate"`
	Available  bool    `json:"available"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
}

// ToUseCaseRequest собирает запрос из параметров checkIn и checkOut
func ToUseCaseRequest(roomID int64, checkInStr, checkOutStr string) (*availability.Request, error) {
	checkIn, err := handlers.ParseDate(checkInStr)
	if err != nil {
		return nil, fmt.Errorf("checkIn: %w", err)
	}
	checkOut, err := handlers.ParseDate(checkOutStr)
	if err != nil {
		return nil, fmt.Errorf("checkOut: %w", err)
	}

	return &availability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:     resp.RoomID,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Available:  resp.Available,
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
	}
}
