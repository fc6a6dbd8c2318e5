package get_room_features

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "ожидается JSON строка с типом номера"
	msgUnknownType        = "неизвестный тип номера"
)

var fragment = template.Must(template.New("features").Parse(
	`<ul class="room-features">{{range .}}<li class="room-feature"><i class="fi fi-rr-{{.}}"></i></li>{{end}}</ul>`,
))

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

// Handle POST /api/v1/rooms/features
// Тело - JSON строка ("suite"), ответ - HTML фрагмент со значками удобств
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomType, err := handlers.DecodeJSONString(r)
	if err != nil {
		h.logger.Warn("POST /rooms/features - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	features, err := h.service.Features(roomType)
	if err != nil {
		if errors.Is(err, rooms.ErrUnknownRoomType) {
			h.logger.Warn("POST /rooms/features - Unknown room type: %q", roomType)
			handlers.RespondNotFound(w, msgUnknownType)
			return
		}
		h.logger.Error("POST /rooms/features - Failed to get features: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	var buf bytes.Buffer
	if err := fragment.Execute(&buf, features); err != nil {
		h.logger.Error("POST /rooms/features - Failed to render fragment: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
