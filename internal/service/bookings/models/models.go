package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListQuery фильтр и сортировка списка бронирований администратора
type ListQuery struct {
	RoomID    *int64  `json:"roomId,omitempty"`
	Status    *string `json:"status,omitempty"`
	SortOrder string  `json:"sortOrder,omitempty"`
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
func (q *ListQuery) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{RoomID: q.RoomID}

	if q.Status != nil && *q.Status != "" {
		status, err := ToDomainBookingStatus(*q.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             int64     `json:"id"`
	RoomID         int64     `json:"roomId"`
	RoomName       string    `json:"roomName"`
	UserID         int64     `json:"userId"`
	GuestFirstName string    `json:"guestFirstName"`
	GuestLastName  string    `json:"guestLastName"`
	GuestName      string    `json:"guestName"`
	CheckInDate    string    `json:"checkInDate"`  // "2024-06-01"
	CheckOutDate   string    `json:"checkOutDate"` // "2024-06-03"
	Nights         int       `json:"nights"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	SortOrder string            `json:"sortOrder,omitempty"`
}

// FromDomainBooking конвертирует доменную модель в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		RoomID:         b.RoomID,
		RoomName:       b.RoomName,
		UserID:         b.UserID,
		GuestFirstName: b.GuestFirstName,
		GuestLastName:  b.GuestLastName,
		GuestName:      b.GuestName(),
		CheckInDate:    b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:   b.CheckOutDate.Format(domain.DateFormat),
		Nights:         b.Nights(),
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в ответ
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus конвертирует строку в статус (без учета регистра)
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
