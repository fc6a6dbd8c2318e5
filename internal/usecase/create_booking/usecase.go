package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
)

// SourceSelfService метка источника бронирования для метрик
const SourceSelfService = "self_service"

// UseCase use case для создания бронирования гостем
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	checker      AvailabilityChecker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		checker:      checker,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, checkIn=%s, checkOut=%s",
		req.UserID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Даты: заезд не в прошлом, выезд позже заезда
	if err := validateDates(req.CheckIn, req.CheckOut, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	var result *domain.Booking

	// 3. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		available, err := uc.checker.IsAvailable(txCtx, room.ID, checkIn, checkOut, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}
		if !available {
			uc.logger.Warn("CreateBooking: room id=%d is not available for %s..%s",
				room.ID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrUnavailable
		}

		totalPrice := domain.TotalPrice(checkIn, checkOut, room.PricePerNight)
		if totalPrice > domain.MaxTotalPrice {
			return fmt.Errorf("%w: total price %.2f exceeds %d", ErrInvalidInput, totalPrice, domain.MaxTotalPrice)
		}

		booking := &domain.Booking{
			RoomID:       room.ID,
			UserID:       req.UserID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			TotalPrice:   totalPrice,
			Status:       domain.StatusPending,
			RoomName:     room.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return mapCreateError(err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			uc.metrics.BookingConflict()
		}
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		if !errors.Is(err, ErrInternal) {
			// ошибки менеджера транзакций (begin/commit, исчерпаны повторы)
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.BookingCreated(SourceSelfService)
	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f", result.ID, result.TotalPrice)

	return &Response{
		ID:         result.ID,
		RoomID:     result.RoomID,
		UserID:     result.UserID,
		CheckIn:    result.CheckInDate,
		CheckOut:   result.CheckOutDate,
		Nights:     result.Nights(),
		TotalPrice: result.TotalPrice,
		Status:     string(result.Status),
		RoomName:   result.RoomName,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// mapCreateError переводит ошибки репозитория в ошибки use case
// Пересечение, пойманное exclusion constraint, означает проигранную гонку за номер
func mapCreateError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrOverlap):
		return ErrUnavailable
	case errors.Is(err, bookingRepo.ErrReferenceNotFound):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}
}

func isKnown(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDateRange)
}
