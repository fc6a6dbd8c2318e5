package get_dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// UseCase use case панели администратора: счетчики, последние брони и календарь занятости
type UseCase struct {
	statsRepo    StatsRepository
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	calendarDays int
	latestLimit  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// calendarDays и latestLimit <= 0 заменяются значениями по умолчанию
func NewUseCase(
	statsRepo StatsRepository,
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	calendarDays int,
	latestLimit int,
	logger Logger,
) *UseCase {
	if calendarDays <= 0 {
		calendarDays = domain.DefaultCalendarDays
	}
	if latestLimit <= 0 {
		latestLimit = domain.DefaultDashboardLatest
	}
	return &UseCase{
		statsRepo:    statsRepo,
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		calendarDays: calendarDays,
		latestLimit:  latestLimit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает панель из одного согласованного снимка (read-only транзакция)
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := domain.DateOnly(uc.timeProvider.Now())
	resp := &Response{Today: today}

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		stats, err := uc.statsRepo.GetStats(txCtx, today)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		latest, err := uc.bookingRepo.GetLatest(txCtx, uc.latestLimit)
		if err != nil {
			return fmt.Errorf("failed to get latest bookings: %w", err)
		}

		rooms, err := uc.roomRepo.GetAll(txCtx)
		if err != nil {
			return fmt.Errorf("failed to get rooms: %w", err)
		}

		bookings, err := uc.bookingRepo.GetAll(txCtx, domain.BookingsFilter{})
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		resp.Stats = *stats
		resp.Latest = latest
		resp.Calendar = domain.BuildCalendar(today, uc.calendarDays, rooms, bookings)
		return nil
	})
	if err != nil {
		uc.logger.Error("GetDashboard: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	uc.logger.Info("GetDashboard: rooms=%d, bookings=%d, pending=%d, todayCheckIns=%d",
		resp.Stats.TotalRooms, resp.Stats.TotalBookings, resp.Stats.PendingBookings, resp.Stats.TodayCheckIns)

	return resp, nil
}
