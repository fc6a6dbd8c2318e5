package get_dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
	getDashboard "github.com/m04kA/HotelBookingService/internal/usecase/get_dashboard"
)

func TestHandle(t *testing.T) {
	store := fakes.NewStore()
	room := store.AddRoom("Suite 1", domain.RoomTypeSuite, 300)
	guest := store.AddUser("Ana", "Silva", domain.RoleUser)

	tomorrow := domain.DateOnly(time.Now()).AddDate(0, 0, 1)
	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID: room.ID, UserID: guest.ID,
		CheckInDate: tomorrow, CheckOutDate: tomorrow.AddDate(0, 0, 2),
		TotalPrice: 600, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	uc := getDashboard.NewUseCase(store, store, store.Rooms(), fakes.NewTxManager(store), 7, 5, fakes.Logger{})
	rec := httptest.NewRecorder()
	NewHandler(uc, fakes.Logger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Stats.TotalRooms)
	assert.Equal(t, 1, resp.Stats.PendingBookings)
	require.Len(t, resp.Latest, 1)
	assert.Equal(t, b.ID, resp.Latest[0].ID)

	assert.Len(t, resp.Calendar.Dates, 7)
	require.Len(t, resp.Calendar.Rows, 1)
	cells := resp.Calendar.Rows[0].Cells
	require.Len(t, cells, 7)
	assert.Nil(t, cells[0].BookingID)
	require.NotNil(t, cells[1].BookingID)
	assert.Equal(t, b.ID, *cells[1].BookingID)
	require.NotNil(t, cells[2].GuestName)
	assert.Equal(t, "Ana Silva", *cells[2].GuestName)
	assert.Nil(t, cells[3].BookingID)
}
