package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
)

// countingChecker считает обращения к проверке доступности
type countingChecker struct {
	next  AvailabilityChecker
	calls int
}

func (c *countingChecker) IsAvailable(ctx context.Context, roomID int64, in, out time.Time, excluding *int64) (bool, error) {
	c.calls++
	return c.next.IsAvailable(ctx, roomID, in, out, excluding)
}

type fixture struct {
	store   *fakes.Store
	checker *countingChecker
	metrics *fakes.Metrics
	room    *domain.Room
	other   *domain.Room
	guest   *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fakes.NewStore()
	return &fixture{
		store:   store,
		checker: &countingChecker{next: availability.NewChecker(store)},
		metrics: fakes.NewMetrics(),
		room:    store.AddRoom("Sea View", domain.RoomTypeSuite, 100),
		other:   store.AddRoom("Garden", domain.RoomTypeEconomy, 50),
		guest:   store.AddUser("Ana", "Silva", domain.RoleUser),
	}
}

func (f *fixture) useCase(allowOverlap bool) *UseCase {
	return NewUseCase(f.store, f.store.Rooms(), f.checker, fakes.NewTxManager(f.store), f.metrics, allowOverlap, fakes.Logger{})
}

func (f *fixture) seed(t *testing.T, roomID int64, inDay, outDay int, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b, err := f.store.Create(context.Background(), &domain.Booking{
		RoomID:       roomID,
		UserID:       f.guest.ID,
		CheckInDate:  fakes.Date(2024, 6, inDay),
		CheckOutDate: fakes.Date(2024, 6, outDay),
		TotalPrice:   1,
		Status:       status,
	})
	require.NoError(t, err)
	return b
}

func edit(b *domain.Booking, roomID int64, inDay, outDay int, status domain.BookingStatus) *Request {
	return &Request{
		ID:       b.ID,
		RoomID:   roomID,
		CheckIn:  fakes.Date(2024, 6, inDay),
		CheckOut: fakes.Date(2024, 6, outDay),
		Status:   status,
	}
}

func TestExecute_RecomputesPrice(t *testing.T) {
	f := newFixture(t)
	b := f.seed(t, f.room.ID, 1, 3, domain.StatusPending)

	resp, err := f.useCase(false).Execute(context.Background(), edit(b, f.other.ID, 1, 4, ""))
	require.NoError(t, err)

	assert.Equal(t, 150.0, resp.TotalPrice)
	assert.Equal(t, "Garden", resp.RoomName)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, f.guest.ID, resp.UserID)
	assert.Empty(t, f.metrics.StatusChanges)
}

func TestExecute_ShiftingOwnDatesIsNotAConflict(t *testing.T) {
	f := newFixture(t)
	b := f.seed(t, f.room.ID, 1, 3, domain.StatusConfirmed)

	_, err := f.useCase(false).Execute(context.Background(), edit(b, f.room.ID, 2, 5, ""))
	assert.NoError(t, err)
}

func TestExecute_RevalidatesOverlap(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.room.ID, 1, 3, domain.StatusConfirmed)
	b := f.seed(t, f.room.ID, 5, 7, domain.StatusPending)

	_, err := f.useCase(false).Execute(context.Background(), edit(b, f.room.ID, 2, 6, ""))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, f.checker.calls)
	assert.Equal(t, 1, f.metrics.Conflicts)

	stored, err := f.store.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, fakes.Date(2024, 6, 5), stored.CheckInDate)
}

func TestExecute_AllowOverlapOnEditSkipsCheck(t *testing.T) {
	f := newFixture(t)
	f.seed(t, f.room.ID, 1, 3, domain.StatusConfirmed)
	b := f.seed(t, f.room.ID, 5, 7, domain.StatusPending)
	uc := f.useCase(true)

	_, err := uc.Execute(context.Background(), edit(b, f.room.ID, 4, 8, ""))
	require.NoError(t, err)
	assert.Zero(t, f.checker.calls)

	// Ограничение хранилища продолжает защищать инвариант
	_, err = uc.Execute(context.Background(), edit(b, f.room.ID, 2, 6, ""))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Zero(t, f.checker.calls)
}

func TestExecute_CancellingSkipsOverlapCheck(t *testing.T) {
	f := newFixture(t)
	b := f.seed(t, f.room.ID, 1, 3, domain.StatusPending)

	resp, err := f.useCase(false).Execute(context.Background(), edit(b, f.room.ID, 1, 3, domain.StatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Zero(t, f.checker.calls)
	assert.Equal(t, 1, f.metrics.StatusChanges[string(domain.StatusCancelled)])
}

func TestExecute_InvalidTransition(t *testing.T) {
	f := newFixture(t)
	b := f.seed(t, f.room.ID, 1, 3, domain.StatusCompleted)

	_, err := f.useCase(false).Execute(context.Background(), edit(b, f.room.ID, 1, 3, domain.StatusPending))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)
	b := f.seed(t, f.room.ID, 1, 3, domain.StatusPending)
	uc := f.useCase(false)

	_, err := uc.Execute(context.Background(), &Request{ID: 999, RoomID: f.room.ID, CheckIn: fakes.Date(2024, 6, 1), CheckOut: fakes.Date(2024, 6, 2)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.Execute(context.Background(), edit(b, 999, 1, 3, ""))
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(context.Background(), edit(b, f.room.ID, 3, 3, ""))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), edit(b, f.room.ID, 1, 3, "archived"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
