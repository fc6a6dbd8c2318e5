package update_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
	updateBooking "github.com/m04kA/HotelBookingService/internal/usecase/update_booking"
)

func TestHandle(t *testing.T) {
	store := fakes.NewStore()
	room := store.AddRoom("Sea View", domain.RoomTypeSuite, 100)
	guest := store.AddUser("Ana", "Silva", domain.RoleUser)
	seed := func(in, out int) *domain.Booking {
		b, err := store.Create(context.Background(), &domain.Booking{
			RoomID: room.ID, UserID: guest.ID,
			CheckInDate: fakes.Date(2024, 6, in), CheckOutDate: fakes.Date(2024, 6, out),
			TotalPrice: 1, Status: domain.StatusPending,
		})
		require.NoError(t, err)
		return b
	}
	seed(1, 3)
	b := seed(5, 7)

	uc := updateBooking.NewUseCase(store, store.Rooms(), availability.NewChecker(store),
		fakes.NewTxManager(store), fakes.NewMetrics(), false, fakes.Logger{})
	h := NewHandler(uc, fakes.Logger{})
	put := func(id int64, body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		r = mux.SetURLVars(r, map[string]string{"bookingId": strconv.FormatInt(id, 10)})
		rec := httptest.NewRecorder()
		h.Handle(rec, r)
		return rec
	}
	roomID := strconv.FormatInt(room.ID, 10)

	rec := put(b.ID, `{"roomId":`+roomID+`,"checkInDate":"2024-06-04","checkOutDate":"2024-06-08","status":"Confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 400.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, guest.ID, resp.UserID)

	assert.Equal(t, http.StatusConflict,
		put(b.ID, `{"roomId":`+roomID+`,"checkInDate":"2024-06-02","checkOutDate":"2024-06-06"}`).Code)
	assert.Equal(t, http.StatusConflict,
		put(b.ID, `{"roomId":`+roomID+`,"checkInDate":"2024-06-04","checkOutDate":"2024-06-08","status":"pending"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		put(999, `{"roomId":`+roomID+`,"checkInDate":"2024-06-04","checkOutDate":"2024-06-08"}`).Code)
	assert.Equal(t, http.StatusNotFound,
		put(b.ID, `{"roomId":999,"checkInDate":"2024-06-04","checkOutDate":"2024-06-08"}`).Code)
	assert.Equal(t, http.StatusBadRequest,
		put(b.ID, `{"roomId":`+roomID+`,"checkInDate":"June 4","checkOutDate":"2024-06-08"}`).Code)
}
