package create_manual_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
	"github.com/m04kA/HotelBookingService/pkg/ptr"
)

type fixture struct {
	store   *fakes.Store
	metrics *fakes.Metrics
	uc      *UseCase
	room    *domain.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fakes.NewStore()
	f := &fixture{
		store:   store,
		metrics: fakes.NewMetrics(),
		room:    store.AddRoom("Garden", domain.RoomTypeStandard, 120.5),
	}
	f.uc = NewUseCase(store, store.Rooms(), store.UserRepo(), availability.NewChecker(store),
		fakes.NewTxManager(store), f.metrics, fakes.Logger{})
	f.uc.newID = func() string { return "7f1c1c9e-0000-4000-8000-000000000001" }
	return f
}

func (f *fixture) request(name string, inDay, outDay int) *Request {
	return &Request{
		RoomID:        f.room.ID,
		CheckIn:       fakes.Date(2024, 6, inDay),
		CheckOut:      fakes.Date(2024, 6, outDay),
		GuestFullName: name,
	}
}

func TestExecute_CreatesGuestAndConfirmedBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request("  Maria   de la Cruz ", 1, 3))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 241.0, resp.TotalPrice)
	assert.Equal(t, "Maria   de la Cruz", resp.GuestName)

	guest, err := f.store.UserRepo().GetByID(context.Background(), resp.GuestUserID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", guest.FirstName)
	assert.Equal(t, "Cruz", guest.LastName)
	assert.Equal(t, domain.RoleGuest, guest.Role)
	assert.Equal(t, "7f1c1c9e-0000-4000-8000-000000000001", guest.Username)
	assert.Equal(t, "7f1c1c9e-0000-4000-8000-000000000001@guest.local", guest.Email)
	assert.Nil(t, guest.PasswordHash)
	assert.Equal(t, 1, f.metrics.Created[SourceManual])
}

func TestExecute_SingleNameGetsGuestLastName(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request("Cher", 1, 2))
	require.NoError(t, err)

	guest, err := f.store.UserRepo().GetByID(context.Background(), resp.GuestUserID)
	require.NoError(t, err)
	assert.Equal(t, "Cher", guest.FirstName)
	assert.Equal(t, "Guest", guest.LastName)
}

func TestExecute_SuppliedStatusIsHonored(t *testing.T) {
	f := newFixture(t)
	req := f.request("Ana", 1, 2)
	req.Status = ptr.Ptr(domain.StatusPending)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_PastCheckInIsAllowed(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		RoomID:        f.room.ID,
		CheckIn:       fakes.Date(2020, 1, 10),
		CheckOut:      fakes.Date(2020, 1, 12),
		GuestFullName: "Late Entry",
	})
	assert.NoError(t, err)
}

func TestExecute_Unavailable_RollsBackGuest(t *testing.T) {
	f := newFixture(t)
	f.uc.newID = func() string { return "first" }
	_, err := f.uc.Execute(context.Background(), f.request("Ana", 1, 3))
	require.NoError(t, err)
	usersBefore := f.store.Users()

	f.uc.newID = func() string { return "second" }
	_, err = f.uc.Execute(context.Background(), f.request("Bob", 2, 4))
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, usersBefore, f.store.Users())
	assert.Equal(t, 1, f.metrics.Conflicts)
}

func TestExecute_CancelledStatusSkipsAvailability(t *testing.T) {
	f := newFixture(t)
	f.uc.newID = func() string { return "first" }
	_, err := f.uc.Execute(context.Background(), f.request("Ana", 1, 3))
	require.NoError(t, err)

	f.uc.newID = func() string { return "second" }
	req := f.request("Bob", 1, 3)
	req.Status = ptr.Ptr(domain.StatusCancelled)
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_AccountCreationFailed(t *testing.T) {
	f := newFixture(t)
	f.store.UserErr = errors.New("user.repository: failed to execute query")

	_, err := f.uc.Execute(context.Background(), f.request("Ana", 1, 3))
	assert.ErrorIs(t, err, ErrAccountCreationFailed)
	assert.Empty(t, f.store.Bookings())
}

func TestExecute_BookingInsertFailure_RollsBackGuest(t *testing.T) {
	f := newFixture(t)
	f.store.Err = errors.New("booking.repository: failed to execute query")

	_, err := f.uc.Execute(context.Background(), f.request("Ana", 1, 3))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.store.Users())
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty name", mutate: func(r *Request) { r.GuestFullName = "   " }, wantErr: ErrInvalidInput},
		{name: "unknown status", mutate: func(r *Request) { r.Status = ptr.Ptr(domain.BookingStatus("archived")) }, wantErr: ErrInvalidInput},
		{name: "reversed dates", mutate: func(r *Request) { r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn }, wantErr: ErrInvalidDateRange},
		{name: "missing room", mutate: func(r *Request) { r.RoomID = 404 }, wantErr: ErrRoomNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("Ana", 1, 3)
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
