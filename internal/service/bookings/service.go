package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	"github.com/m04kA/HotelBookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и смены их статуса
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID (администратор)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// GetOwn получает бронирование пользователя
// Чужое бронирование возвращает ErrAccessDenied
func (s *Service) GetOwn(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, id, "GetOwn")
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		s.logger.Warn("GetOwn: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя, сначала более поздние заезды
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetAll получает бронирования с фильтром по номеру и статусу и сортировкой
// Фильтр применяется до сортировки; неизвестный ключ сортировки заменяется на date_desc
func (s *Service) GetAll(ctx context.Context, query *models.ListQuery) (*models.BookingListResponse, error) {
	filter, err := query.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetAll: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, filter)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	applied := SortBookings(bookings, query.SortOrder)
	s.logger.Info("GetAll: fetched %d bookings, sort=%s", len(bookings), applied)

	resp := models.FromDomainBookingList(bookings)
	resp.SortOrder = applied
	return resp, nil
}

// Approve подтверждает бронирование (pending -> confirmed)
func (s *Service) Approve(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusConfirmed, nil)
}

// Cancel отменяет бронирование (администратор)
func (s *Service) Cancel(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusCancelled, nil)
}

// Complete завершает бронирование (confirmed -> completed)
func (s *Service) Complete(ctx context.Context, id int64) error {
	return s.transition(ctx, id, domain.StatusCompleted, nil)
}

// CancelOwn отменяет бронирование от имени его владельца
func (s *Service) CancelOwn(ctx context.Context, id int64, userID int64) error {
	return s.transition(ctx, id, domain.StatusCancelled, &userID)
}

// Delete удаляет бронирование без дополнительных проверок
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

// transition переводит бронирование в статус target по конечному автомату
// ownerID != nil ограничивает операцию бронированиями этого пользователя
func (s *Service) transition(ctx context.Context, id int64, target domain.BookingStatus, ownerID *int64) error {
	s.logger.Info("Transition: booking id=%d -> %s", id, target)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, id, "Transition")
		if err != nil {
			return err
		}

		if ownerID != nil && booking.UserID != *ownerID {
			s.logger.Warn("Transition: access denied for user=%d to booking id=%d", *ownerID, id)
			return ErrAccessDenied
		}

		if !booking.Status.CanTransitionTo(target) {
			s.logger.Warn("Transition: booking id=%d cannot move %s -> %s", id, booking.Status, target)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, target); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Transition: repository error for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Transition - repository error: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrAccessDenied) ||
			errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrInternal) {
			return err
		}
		s.logger.Error("Transition: transaction error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Transition - transaction error: %w", ErrInternal, err)
	}

	s.metrics.BookingStatusChanged(string(target))
	s.logger.Info("Transition: booking id=%d is now %s", id, target)
	return nil
}

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return booking, nil
}
