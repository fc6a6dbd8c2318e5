package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера на даты (только чтение)
type UseCase struct {
	roomRepo RoomRepository
	checker  *Checker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, checker *Checker, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute проверяет, свободен ли номер, и считает стоимость проживания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Availability: room=%d, checkIn=%s, checkOut=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Availability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("Availability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("Availability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем пересечения
	available, err := uc.checker.IsAvailable(ctx, room.ID, req.CheckIn, req.CheckOut, nil)
	if err != nil {
		uc.logger.Error("Availability: failed to check room id=%d: %v", room.ID, err)
		return nil, err
	}

	return &Response{
		RoomID:     room.ID,
		CheckIn:    domain.DateOnly(req.CheckIn),
		CheckOut:   domain.DateOnly(req.CheckOut),
		Available:  available,
		Nights:     domain.Nights(req.CheckIn, req.CheckOut),
		TotalPrice: domain.TotalPrice(req.CheckIn, req.CheckOut, room.PricePerNight),
	}, nil
}
