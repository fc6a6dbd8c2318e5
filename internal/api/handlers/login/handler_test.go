package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/service/auth"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
)

func TestHandle(t *testing.T) {
	store := fakes.NewStore()
	svc := auth.NewService(store.UserRepo(), "secret", time.Hour, fakes.Logger{})
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin@hotel.local", "admin", "admin-pass"))

	h := NewHandler(svc, fakes.Logger{})
	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))
		return rec
	}

	rec := post(`{"email":"admin@hotel.local","password":"admin-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"admin"`)

	rec = post(`{"email":"admin@hotel.local","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"неверный email или пароль"}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, post(`{"email":"nobody@hotel.local","password":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`[]`).Code)
}
