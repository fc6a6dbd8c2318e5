package create_room

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/service/rooms"
)

const (
	msgInvalidForm  = "некорректные данные формы"
	msgInvalidInput = "некорректные данные номера"
	msgInvalidImage = "файл изображения не поддерживается или слишком большой"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/rooms
// multipart/form-data: name, type, capacity, pricePerNight, description, image (необязательно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, image, err := handlers.ReadRoomForm(r)
	if err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	var imageReader io.Reader
	if image != nil {
		defer image.Close()
		imageReader = image
	}

	room, err := h.service.Create(r.Context(), req, imageReader)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /admin/rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rooms.ErrInvalidImage):
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("POST /admin/rooms - Failed to create room: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: room_id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
