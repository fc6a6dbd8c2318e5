package change_booking_status

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	"github.com/m04kA/HotelBookingService/internal/service/bookings"
)

// Action административное действие над бронированием
type Action string

const (
	ActionApprove  Action = "approve"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "недопустимая смена статуса бронирования"
)

type Handler struct {
	action Action
	apply  func(ctx context.Context, id int64) error
	logger Logger
}

// NewHandler создает обработчик для одного действия: approve, cancel или complete
func NewHandler(service BookingService, action Action, logger Logger) *Handler {
	h := &Handler{action: action, logger: logger}
	switch action {
	case ActionApprove:
		h.apply = service.Approve
	case ActionCancel:
		h.apply = service.Cancel
	case ActionComplete:
		h.apply = service.Complete
	default:
		panic("change_booking_status: unknown action " + string(action))
	}
	return h
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/{approve|cancel|complete}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/%s - Invalid booking ID: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.apply(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/%s - Invalid transition: booking_id=%d", h.action, bookingID)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/%s - Failed: booking_id=%d, error=%v", h.action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/%s - Done: booking_id=%d", h.action, bookingID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
