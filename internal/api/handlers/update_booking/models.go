package update_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/domain"
	updateBooking "github.com/m04kA/HotelBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	RoomID       int64   `json:"roomId"`
	UserID       *int64  `json:"userId,omitempty"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Status       *string `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	RoomName     string  `json:"roomName"`
	UserID       int64   `json:"userId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(id int64) (*updateBooking.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("checkInDate: %w", err)
	}
	checkOut, err := handlers.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("checkOutDate: %w", err)
	}

	req := &updateBooking.Request{
		ID:       id,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if r.UserID != nil {
		req.UserID = *r.UserID
	}
	if r.Status != nil {
		req.Status = domain.BookingStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		RoomID:       resp.RoomID,
		RoomName:     resp.RoomName,
		UserID:       resp.UserID,
		CheckInDate:  resp.CheckIn.Format(domain.DateFormat),
		CheckOutDate: resp.CheckOut.Format(domain.DateFormat),
		Nights:       resp.Nights,
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
	}
}
