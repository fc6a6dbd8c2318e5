package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/api/middleware"
	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/usecase/availability"
	createBooking "github.com/m04kA/HotelBookingService/internal/usecase/create_booking"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
)

type fixture struct {
	handler *Handler
	room    *domain.Room
	guest   *domain.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := fakes.NewStore()
	uc := createBooking.NewUseCase(store, store.Rooms(), availability.NewChecker(store),
		fakes.NewTxManager(store), fakes.NewMetrics(), fakes.Logger{})
	return &fixture{
		handler: NewHandler(uc, fakes.Logger{}),
		room:    store.AddRoom("Sea View", domain.RoomTypeSuite, 100),
		guest:   store.AddUser("Ana", "Silva", domain.RoleUser),
	}
}

func (f *fixture) do(t *testing.T, body string, withUser bool) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withUser {
		r = r.WithContext(middleware.WithUser(context.Background(), f.guest.ID, domain.RoleUser))
	}
	rec := httptest.NewRecorder()
	f.handler.Handle(rec, r)
	return rec
}

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(domain.DateFormat)
}

func (f *fixture) body(in, out string) string {
	return fmt.Sprintf(`{"roomId":%d,"checkInDate":%q,"checkOutDate":%q}`, f.room.ID, in, out)
}

func TestHandle_Created(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, f.body(day(10), day(13)), true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 300.0, resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, f.guest.ID, resp.UserID)
}

func TestHandle_Errors(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusCreated, f.do(t, f.body(day(10), day(13)), true).Code)

	tests := []struct {
		name     string
		body     string
		withUser bool
		want     int
	}{
		{name: "no user", body: f.body(day(20), day(21)), want: http.StatusUnauthorized},
		{name: "broken json", body: `{"roomId":`, withUser: true, want: http.StatusBadRequest},
		{name: "bad date", body: f.body("01/06/2024", day(21)), withUser: true, want: http.StatusBadRequest},
		{name: "past check-in", body: f.body(day(-2), day(1)), withUser: true, want: http.StatusBadRequest},
		{name: "reversed", body: f.body(day(22), day(21)), withUser: true, want: http.StatusBadRequest},
		{name: "overlap", body: f.body(day(11), day(14)), withUser: true, want: http.StatusConflict},
		{name: "unknown room", body: fmt.Sprintf(`{"roomId":999,"checkInDate":%q,"checkOutDate":%q}`, day(30), day(31)), withUser: true, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, tt.body, tt.withUser)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"message"`)
		})
	}
}
