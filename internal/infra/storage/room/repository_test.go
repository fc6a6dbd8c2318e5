package room

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/HotelBookingService/pkg/pgerrors"
	"github.com/m04kA/HotelBookingService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO rooms").
		WithArgs("Sea View", "Suite", 2, 150.5, "Top floor", "/images/rooms/a.png").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(1, now, now))

	room, err := repo.Create(context.Background(), &domain.Room{
		Name:          "Sea View",
		Type:          "Suite",
		Capacity:      2,
		PricePerNight: 150.5,
		Description:   "Top floor",
		ImageURL:      ptr.Ptr("/images/rooms/a.png"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), room.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow(4, "Garden", "Economy", 1, 40.0, "Quiet", nil, now, now))

	room, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Garden", room.Name)
	assert.Nil(t, room.ImageURL)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM rooms").
		WillReturnRows(sqlmock.NewRows(roomColumns))

	_, err := repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetAll(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM rooms ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow(1, "A", "Suite", 2, 100.0, "d", "/images/rooms/a.png", now, now).
			AddRow(2, "B", "Standard", 3, 80.0, "d", nil, now, now))

	rooms, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.NotNil(t, rooms[0].ImageURL)
	assert.Equal(t, "/images/rooms/a.png", *rooms[0].ImageURL)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE rooms SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.Room{ID: 9, Name: "x"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDelete_ReferencedByBookings(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM rooms WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnError(&pq.Error{Code: pgerrors.ForeignKeyViolation, Constraint: "bookings_room_id_fkey"})

	err := repo.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, ErrRoomInUse)
}

func TestCount(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM rooms`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
