package rooms

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/infra/storage/images"
	"github.com/m04kA/HotelBookingService/internal/service/rooms/models"
	"github.com/m04kA/HotelBookingService/internal/usecase/fakes"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fixture struct {
	store  *fakes.Store
	images *images.Store
	dir    string
	svc    *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	imgs, err := images.NewStore(dir, "/images/rooms/", 1024)
	require.NoError(t, err)

	store := fakes.NewStore()
	return &fixture{
		store:  store,
		images: imgs,
		dir:    dir,
		svc:    NewService(store.Rooms(), store, imgs, fakes.Logger{}),
	}
}

func (f *fixture) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func validRequest() *models.RoomRequest {
	return &models.RoomRequest{
		Name:          " Sea View ",
		Type:          "suite",
		Capacity:      2,
		PricePerNight: 149.99,
		Description:   "Corner room facing the bay",
	}
}

func TestCreate_WithImage(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Create(context.Background(), validRequest(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "Sea View", resp.Name)
	require.NotNil(t, resp.ImageURL)
	assert.True(t, strings.HasPrefix(*resp.ImageURL, "/images/rooms/"))
	assert.Len(t, resp.Features, 11)
	assert.Len(t, f.files(t), 1)
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(r *models.RoomRequest)
	}{
		{name: "empty name", mutate: func(r *models.RoomRequest) { r.Name = "  " }},
		{name: "long name", mutate: func(r *models.RoomRequest) { r.Name = strings.Repeat("x", 101) }},
		{name: "zero capacity", mutate: func(r *models.RoomRequest) { r.Capacity = 0 }},
		{name: "capacity too big", mutate: func(r *models.RoomRequest) { r.Capacity = 11 }},
		{name: "price too high", mutate: func(r *models.RoomRequest) { r.PricePerNight = 10000.01 }},
		{name: "missing description", mutate: func(r *models.RoomRequest) { r.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := f.svc.Create(context.Background(), req, nil)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreate_RejectsNonImage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), validRequest(), strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	list, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestUpdate_KeepsImageWithoutNewFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.svc.Create(ctx, validRequest(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	req := validRequest()
	req.PricePerNight = 200
	updated, err := f.svc.Update(ctx, created.ID, req, nil)
	require.NoError(t, err)

	assert.Equal(t, 200.0, updated.PricePerNight)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
}

func TestUpdate_ReplacesImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.svc.Create(ctx, validRequest(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID, validRequest(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.NotEqual(t, *created.ImageURL, *updated.ImageURL)
	assert.Equal(t, []string{filepath.Base(*updated.ImageURL)}, f.files(t))

	_, err = f.svc.Update(ctx, 999, validRequest(), nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	free, err := f.svc.Create(ctx, validRequest(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	booked := f.store.AddRoom("Garden", domain.RoomTypeEconomy, 50)
	guest := f.store.AddUser("Ana", "Silva", domain.RoleUser)
	_, err = f.store.Create(ctx, &domain.Booking{
		RoomID:       booked.ID,
		UserID:       guest.ID,
		CheckInDate:  fakes.Date(2024, 6, 1),
		CheckOutDate: fakes.Date(2024, 6, 2),
		Status:       domain.StatusCancelled,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, booked.ID), ErrRoomInUse)
	require.NoError(t, f.svc.Delete(ctx, free.ID))
	assert.Empty(t, f.files(t))
	assert.ErrorIs(t, f.svc.Delete(ctx, free.ID), ErrRoomNotFound)
}

func TestFeatures(t *testing.T) {
	f := newFixture(t)

	features, err := f.svc.Features("ECONOMY")
	require.NoError(t, err)
	assert.Equal(t, []string{"wifi", "shower", "bed-alt"}, features)

	_, err = f.svc.Features("penthouse")
	assert.ErrorIs(t, err, ErrUnknownRoomType)
}
