package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/HotelBookingService/pkg/pgerrors"
	"github.com/m04kA/HotelBookingService/pkg/txmanager"
)

// conflictOnceRepo отдаёт ошибку сериализации на первом чтении активных бронирований
type conflictOnceRepo struct {
	*fakes.Store
	calls int
}

func (r *conflictOnceRepo) GetActiveByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	r.calls++
	if r.calls == 1 {
		return nil, &pq.Error{Code: pgerrors.SerializationFailure, Message: "could not serialize access due to concurrent update"}
	}
	return r.Store.GetActiveByRoom(ctx, roomID)
}

func TestExecute_RetriesSerializationFailureFromAvailabilityCheck(t *testing.T) {
	f := newFixture(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &conflictOnceRepo{Store: f.store}
	uc := NewUseCase(f.store, f.store.Rooms(), availability.NewChecker(repo),
		txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil), 3), f.metrics, fakes.Logger{})
	uc.timeProvider = f.uc.timeProvider

	resp, err := uc.Execute(context.Background(), f.request(1, 4))
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Len(t, f.store.Bookings(), 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRealTimeProvider_ReturnsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, (&RealTimeProvider{}).Now().Location())
}
