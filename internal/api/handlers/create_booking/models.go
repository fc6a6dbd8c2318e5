package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/domain"
	createBooking "github.com/m04kA/HotelBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Цена и статус клиентом не передаются
type CreateBookingRequest struct {
	RoomID       int64  `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`  // "2024-06-01"
	CheckOutDate string `json:"checkOutDate"` // "2024-06-03"
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
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("checkInDate: %w", err)
	}
	checkOut, err := handlers.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("checkOutDate: %w", err)
	}

	return &createBooking.Request{
		UserID:   userID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
