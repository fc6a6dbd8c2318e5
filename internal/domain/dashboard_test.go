package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendar(t *testing.T) {
	rooms := []*Room{{ID: 1, Name: "101"}, {ID: 2, Name: "102"}}
	bookings := []*Booking{
		{ID: 10, RoomID: 1, CheckInDate: date("2024-06-02"), CheckOutDate: date("2024-06-04"), Status: StatusConfirmed},
		{ID: 11, RoomID: 2, CheckInDate: date("2024-06-01"), CheckOutDate: date("2024-06-03"), Status: StatusCancelled},
		{ID: 12, RoomID: 2, CheckInDate: date("2024-05-30"), CheckOutDate: date("2024-06-02"), Status: StatusCompleted},
	}

	cal := BuildCalendar(date("2024-06-01"), 5, rooms, bookings)

	require.Len(t, cal.Dates, 5)
	assert.Equal(t, date("2024-06-01"), cal.Dates[0])
	assert.Equal(t, date("2024-06-05"), cal.Dates[4])
	assert.Len(t, cal.Bookings, 3)
	require.Len(t, cal.Rows, 2)

	room1 := cal.Rows[0]
	assert.False(t, room1.Cells[0].IsOccupied())
	assert.Equal(t, int64(10), room1.Cells[1].Booking.ID)
	assert.Equal(t, int64(10), room1.Cells[2].Booking.ID)
	assert.False(t, room1.Cells[3].IsOccupied())

	// отменённое бронирование не занимает ячейки, завершённое - занимает
	room2 := cal.Rows[1]
	assert.Equal(t, int64(12), room2.Cells[0].Booking.ID)
	assert.False(t, room2.Cells[1].IsOccupied())
	assert.False(t, room2.Cells[2].IsOccupied())
}
