package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/service/auth"
	"github.com/m04kA/HotelBookingService/internal/service/auth/models"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
	"github.com/m04kA/HotelBookingService/pkg/metrics"
)

func tokens(t *testing.T, svc *auth.Service) (user, admin string) {
	t.Helper()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &models.RegisterRequest{
		Email: "ana@example.com", Username: "ana", Password: "password", FirstName: "Ana", LastName: "Silva",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SeedAdmin(ctx, "admin@hotel.com", "Admin", "password"))
	logged, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@hotel.com", Password: "password"})
	require.NoError(t, err)

	return registered.Token, logged.Token
}

func protected(svc *auth.Service, roles ...domain.Role) http.Handler {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserID(r.Context()); !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	if len(roles) > 0 {
		h = RequireRole(fakes.Logger{}, roles...)(h)
	}
	return Auth(svc, fakes.Logger{})(h)
}

func TestAuth(t *testing.T) {
	store := fakes.NewStore()
	svc := auth.NewService(store.UserRepo(), "secret", time.Hour, fakes.Logger{})
	userToken, adminToken := tokens(t, svc)

	tests := []struct {
		name   string
		header string
		roles  []domain.Role
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", want: http.StatusUnauthorized},
		{name: "user", header: "Bearer " + userToken, want: http.StatusOK},
		{name: "user on admin route", header: "Bearer " + userToken, roles: []domain.Role{domain.RoleAdmin}, want: http.StatusForbidden},
		{name: "admin on admin route", header: "Bearer " + adminToken, roles: []domain.Role{domain.RoleAdmin}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protected(svc, tt.roles...).ServeHTTP(rec, r)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("test", reg)

	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/rooms/{roomId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/rooms/{roomId}", "404")))
}

func TestRecover(t *testing.T) {
	h := Recover(fakes.Logger{})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}
