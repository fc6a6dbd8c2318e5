package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/HotelBookingService/pkg/psqlbuilder"
)

// Repository агрегаты для панели администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория статистики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetStats считает счетчики панели одним запросом
// today - календарная дата, с которой сравнивается дата заезда подтвержденных бронирований
func (r *Repository) GetStats(ctx context.Context, today time.Time) (*domain.DashboardStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column("(SELECT COUNT(*) FROM rooms)").
		Column("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.StatusPending)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ? AND check_in_date = ?)", domain.StatusConfirmed, domain.DateOnly(today))).
		From("bookings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.DashboardStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalRooms,
		&stats.TotalBookings,
		&stats.PendingBookings,
		&stats.TodayCheckIns,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStats - scan stats: %w", ErrScanRow, err)
	}

	return &stats, nil
}
