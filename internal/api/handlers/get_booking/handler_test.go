package get_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/api/middleware"
	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/service/bookings"
	"github.com/m04kA/HotelBookingService/internal/service/bookings/models"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
)

func TestHandle_OwnershipAndAdmin(t *testing.T) {
	store := fakes.NewStore()
	room := store.AddRoom("Sea View", domain.RoomTypeSuite, 100)
	ana := store.AddUser("Ana", "Silva", domain.RoleUser)
	bob := store.AddUser("Bob", "Stone", domain.RoleUser)
	admin := store.AddUser("Admin", "", domain.RoleAdmin)
	b, err := store.Create(context.Background(), &domain.Booking{
		RoomID: room.ID, UserID: ana.ID,
		CheckInDate: fakes.Date(2024, 6, 1), CheckOutDate: fakes.Date(2024, 6, 3),
		TotalPrice: 200, Status: domain.StatusPending,
	})
	require.NoError(t, err)

	h := NewHandler(bookings.NewService(store, fakes.NewTxManager(store), fakes.NewMetrics(), fakes.Logger{}), fakes.Logger{})
	get := func(userID int64, role domain.Role, id int64) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = mux.SetURLVars(r, map[string]string{"bookingId": strconv.FormatInt(id, 10)})
		r = r.WithContext(middleware.WithUser(r.Context(), userID, role))
		rec := httptest.NewRecorder()
		h.Handle(rec, r)
		return rec
	}

	rec := get(ana.ID, domain.RoleUser, b.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ana Silva", resp.GuestName)
	assert.Equal(t, 200.0, resp.TotalPrice)

	assert.Equal(t, http.StatusForbidden, get(bob.ID, domain.RoleUser, b.ID).Code)
	assert.Equal(t, http.StatusOK, get(admin.ID, domain.RoleAdmin, b.ID).Code)
	assert.Equal(t, http.StatusNotFound, get(admin.ID, domain.RoleAdmin, 999).Code)
}
