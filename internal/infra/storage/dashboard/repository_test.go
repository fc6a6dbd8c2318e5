package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
)

func TestGetStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM rooms\), COUNT\(\*\), COUNT\(\*\) FILTER \(WHERE status = \$1\), COUNT\(\*\) FILTER \(WHERE status = \$2 AND check_in_date = \$3\) FROM bookings`).
		WithArgs(domain.StatusPending, domain.StatusConfirmed, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"rooms", "total", "pending", "today"}).AddRow(4, 10, 3, 1))

	stats, err := NewRepository(dbmetrics.Wrap(db, nil)).GetStats(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{TotalRooms: 4, TotalBookings: 10, PendingBookings: 3, TodayCheckIns: 1}, *stats)
	require.NoError(t, mock.ExpectationsWereMet())
}
