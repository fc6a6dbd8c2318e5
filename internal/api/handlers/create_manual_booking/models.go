package create_manual_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/domain"
	createManualBooking "github.com/m04kA/HotelBookingService/internal/usecase/create_manual_booking"
)

// CreateManualBookingRequest HTTP request model
// Цена, переданная клиентом, игнорируется
type CreateManualBookingRequest struct {
	RoomID        int64    `json:"roomId"`
	CheckInDate   string   `json:"checkInDate"`
	CheckOutDate  string   `json:"checkOutDate"`
	Status        *string  `json:"status,omitempty"`
	GuestFullName string   `json:"guestFullName"`
	TotalPrice    *float64 `json:"totalPrice,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	RoomID       int64   `json:"roomId"`
	RoomName     string  `json:"roomName"`
	GuestUserID  int64   `json:"guestUserId"`
	GuestName    string  `json:"guestName"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateManualBookingRequest) ToUseCaseRequest() (*createManualBooking.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("checkInDate: %w", err)
	}
	checkOut, err := handlers.ParseDate(r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("checkOutDate: %w", err)
	}

	req := &createManualBooking.Request{
		RoomID:        r.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		GuestFullName: r.GuestFullName,
	}
	if r.Status != nil && strings.TrimSpace(*r.Status) != "" {
		status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createManualBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		RoomID:       resp.RoomID,
		RoomName:     resp.RoomName,
		GuestUserID:  resp.GuestUserID,
		GuestName:    resp.GuestName,
		CheckInDate:  resp.CheckIn.Format(domain.DateFormat),
		CheckOutDate: resp.CheckOut.Format(domain.DateFormat),
		Nights:       resp.Nights,
		TotalPrice:   resp.TotalPrice,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
