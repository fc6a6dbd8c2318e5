package create_manual_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
)

// SourceManual метка источника бронирования для метрик
const SourceManual = "manual"

// UseCase use case для бронирования администратором от имени гостя
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	userRepo    UserRepository
	checker     AvailabilityChecker
	txManager   TransactionManager
	metrics     Metrics
	newID       func() string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userRepo UserRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		checker:     checker,
		txManager:   txManager,
		metrics:     metrics,
		newID:       uuid.NewString,
		logger:      logger,
	}
}

// Execute создает гостевую учетную запись и бронирование в одной транзакции
// Если любая из вставок не удалась, не сохраняется ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateManualBooking: room=%d, checkIn=%s, checkOut=%s, guest=%q",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.GuestFullName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateManualBooking: validation failed: %v", err)
		return nil, err
	}

	status := domain.StatusConfirmed
	if req.Status != nil {
		status = *req.Status
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)
	guest := newGuest(req.GuestFullName, uc.newID())

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Номер
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateManualBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		// 3. Доступность (отмененные и завершенные брони номер не занимают)
		if status.BlocksRoom() {
			available, err := uc.checker.IsAvailable(txCtx, room.ID, checkIn, checkOut, nil)
			if err != nil {
				return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
			}
			if !available {
				uc.logger.Warn("CreateManualBooking: room id=%d is not available for %s..%s",
					room.ID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
				return ErrUnavailable
			}
		}

		totalPrice := domain.TotalPrice(checkIn, checkOut, room.PricePerNight)
		if totalPrice > domain.MaxTotalPrice {
			return fmt.Errorf("%w: total price %.2f exceeds %d", ErrInvalidInput, totalPrice, domain.MaxTotalPrice)
		}

		// 4. Гостевая учетная запись
		createdGuest, err := uc.userRepo.Create(txCtx, guest)
		if err != nil {
			uc.logger.Error("CreateManualBooking: failed to create guest account %s: %v", guest.Username, err)
			return fmt.Errorf("%w: %w", ErrAccountCreationFailed, err)
		}

		// 5. Бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			RoomID:           room.ID,
			UserID:           createdGuest.ID,
			CheckInDate:      checkIn,
			CheckOutDate:     checkOut,
			TotalPrice:       totalPrice,
			Status:           status,
			RoomName:         room.Name,
			GuestFirstName:   createdGuest.FirstName,
			GuestLastName:    createdGuest.LastName,
			GuestDisplayName: createdGuest.DisplayName,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlap) {
				return ErrUnavailable
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
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
		uc.logger.Error("CreateManualBooking: failed to create booking: %v", err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.BookingCreated(SourceManual)
	uc.logger.Info("CreateManualBooking: created booking id=%d for guest user id=%d", result.ID, result.UserID)

	return &Response{
		ID:          result.ID,
		RoomID:      result.RoomID,
		GuestUserID: result.UserID,
		GuestName:   result.GuestName(),
		CheckIn:     result.CheckInDate,
		CheckOut:    result.CheckOutDate,
		Nights:      result.Nights(),
		TotalPrice:  result.TotalPrice,
		Status:      string(result.Status),
		RoomName:    result.RoomName,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}

// newGuest собирает синтетическую учетную запись гостя из имени
func newGuest(fullName, id string) *domain.User {
	first, last := domain.SplitGuestName(fullName)
	return &domain.User{
		Username:    id,
		Email:       id + "@" + domain.GuestEmailDomain,
		FirstName:   first,
		LastName:    last,
		DisplayName: strings.TrimSpace(fullName),
		Role:        domain.RoleGuest,
	}
}

func isKnown(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrAccountCreationFailed) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidDateRange)
}
