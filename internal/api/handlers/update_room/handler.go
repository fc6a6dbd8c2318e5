package update_room

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidForm   = "некорректные данные формы"
	msgInvalidInput  = "некорректные данные номера"
	msgInvalidImage  = "файл изображения не поддерживается или слишком большой"
	msgNotFound      = "номер не найден"
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

// Handle PUT /api/v1/admin/rooms/{roomId}
// Изображение заменяется, только если передан новый файл
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathID(r, "roomId")
	if err != nil {
		h.logger.Warn("PUT /admin/rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req, image, err := handlers.ReadRoomForm(r)
	if err != nil {
		h.logger.Warn("PUT /admin/rooms/{id} - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	var imageReader io.Reader
	if image != nil {
		defer image.Close()
		imageReader = image
	}

	room, err := h.service.Update(r.Context(), roomID, req, imageReader)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /admin/rooms/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rooms.ErrInvalidImage):
			handlers.RespondBadRequest(w, msgInvalidImage)

		default:
			h.logger.Error("PUT /admin/rooms/{id} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/rooms/{id} - Room updated: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}
