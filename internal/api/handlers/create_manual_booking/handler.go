package create_manual_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/HotelBookingService/internal/api/handlers"
	createManualBooking "github.com/m04kA/HotelBookingService/internal/usecase/create_manual_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange     = "дата выезда должна быть позже даты заезда"
	msgRoomNotFound         = "номер не найден"
	msgUnavailable          = "номер недоступен на выбранные даты"
	msgInvalidInput         = "некорректные данные бронирования"
	msgAccountCreationError = "не удалось создать учетную запись гостя"
)

type Handler struct {
	useCase CreateManualBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateManualBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings
// Бронирование для гостя без учетной записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateManualBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.TotalPrice != nil {
		h.logger.Info("POST /admin/bookings - Client price %.2f ignored", *req.TotalPrice)
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createManualBooking.ErrUnavailable):
			h.logger.Warn("POST /admin/bookings - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgUnavailable)

		case errors.Is(err, createManualBooking.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createManualBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createManualBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createManualBooking.ErrAccountCreationFailed):
			h.logger.Error("POST /admin/bookings - Guest account creation failed: error=%v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgAccountCreationError)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings - Booking created: booking_id=%d, guest_user_id=%d",
		result.ID, result.GuestUserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
