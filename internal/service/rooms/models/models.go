package models

import (
	"strings"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// Request модели

// RoomRequest данные номера для создания и редактирования
type RoomRequest struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Type          string  `json:"type" validate:"required,max=50"`
	Capacity      int     `json:"capacity" validate:"min=1,max=10"`
	PricePerNight float64 `json:"pricePerNight" validate:"min=1,max=10000"`
	Description   string  `json:"description" validate:"required,max=500"`
}

// Normalize убирает пробелы по краям текстовых полей
func (r *RoomRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.TrimSpace(r.Type)
	r.Description = strings.TrimSpace(r.Description)
}

// ToDomainRoom конвертирует запрос в доменную модель
func (r *RoomRequest) ToDomainRoom() *domain.Room {
	return &domain.Room{
		Name:          r.Name,
		Type:          r.Type,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Description:   r.Description,
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	Description   string    `json:"description"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	Features      []string  `json:"features,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomListResponse список номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

// FromDomainRoom конвертирует доменную модель в ответ
func FromDomainRoom(room *domain.Room) *RoomResponse {
	features, _ := domain.FeaturesForType(room.Type)
	return &RoomResponse{
		ID:            room.ID,
		Name:          room.Name,
		Type:          room.Type,
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight,
		Description:   room.Description,
		ImageURL:      room.ImageURL,
		Features:      features,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список доменных моделей в ответ
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, *FromDomainRoom(r))
	}
	return &RoomListResponse{Rooms: out, Total: len(out)}
}
