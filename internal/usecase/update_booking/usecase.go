package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
)

// UseCase use case редактирования бронирования администратором
type UseCase struct {
	bookingRepo        BookingRepository
	roomRepo           RoomRepository
	checker            AvailabilityChecker
	txManager          TransactionManager
	metrics            Metrics
	allowOverlapOnEdit bool
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
// allowOverlapOnEdit отключает предварительную проверку пересечений;
// ограничение базы на пересечение активных бронирований при этом продолжает действовать
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	metrics Metrics,
	allowOverlapOnEdit bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:        bookingRepo,
		roomRepo:           roomRepo,
		checker:            checker,
		txManager:          txManager,
		metrics:            metrics,
		allowOverlapOnEdit: allowOverlapOnEdit,
		logger:             logger,
	}
}

// Execute перезаписывает поля бронирования, пересчитывая цену по текущей цене номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, room=%d, checkIn=%s, checkOut=%s, status=%q",
		req.ID, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Status)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	var (
		updated       *domain.Booking
		statusChanged bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		status := existing.Status
		if req.Status != "" {
			status = req.Status
		}
		if err := validateTransition(existing.Status, status); err != nil {
			return err
		}

		if !uc.allowOverlapOnEdit && status.BlocksRoom() {
			available, err := uc.checker.IsAvailable(txCtx, room.ID, checkIn, checkOut, &existing.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
			}
			if !available {
				return ErrUnavailable
			}
		}

		totalPrice := domain.TotalPrice(checkIn, checkOut, room.PricePerNight)
		if totalPrice > domain.MaxTotalPrice {
			return fmt.Errorf("%w: total price %.2f exceeds %d", ErrInvalidInput, totalPrice, domain.MaxTotalPrice)
		}

		next := *existing
		next.RoomID = room.ID
		next.RoomName = room.Name
		next.CheckInDate = checkIn
		next.CheckOutDate = checkOut
		next.TotalPrice = totalPrice
		next.Status = status
		if req.UserID > 0 {
			next.UserID = req.UserID
		}

		if err := uc.bookingRepo.Update(txCtx, &next); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrNotFound
			case errors.Is(err, bookingRepo.ErrOverlap):
				return ErrUnavailable
			case errors.Is(err, bookingRepo.ErrReferenceNotFound):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		updated = &next
		statusChanged = existing.Status != status
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrUnavailable):
			uc.metrics.BookingConflict()
			uc.logger.Warn("UpdateBooking: id=%d overlaps another booking of room id=%d", req.ID, req.RoomID)
			return nil, err
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrRoomNotFound),
			errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidInput):
			uc.logger.Warn("UpdateBooking: id=%d rejected: %v", req.ID, err)
			return nil, err
		}
		uc.logger.Error("UpdateBooking: id=%d failed: %v", req.ID, err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	if statusChanged {
		uc.metrics.BookingStatusChanged(string(updated.Status))
	}
	uc.logger.Info("UpdateBooking: id=%d updated, total=%.2f, status=%s", updated.ID, updated.TotalPrice, updated.Status)

	return &Response{
		ID:         updated.ID,
		RoomID:     updated.RoomID,
		UserID:     updated.UserID,
		CheckIn:    updated.CheckInDate,
		CheckOut:   updated.CheckOutDate,
		Nights:     updated.Nights(),
		TotalPrice: updated.TotalPrice,
		Status:     string(updated.Status),
		RoomName:   updated.RoomName,
	}, nil
}
