package domain

import "time"

// DashboardStats aggregated counters for the admin dashboard
type DashboardStats struct {
	TotalRooms      int
	TotalBookings   int
	PendingBookings int
	TodayCheckIns   int
}

// CalendarCell one room-night of the occupancy grid
type CalendarCell struct {
	Date    time.Time
	Booking *Booking // nil when the room is free that night
}

// IsOccupied returns true if a booking covers this night
func (c CalendarCell) IsOccupied() bool {
	return c.Booking != nil
}

// CalendarRow occupancy of a single room over the calendar window
type CalendarRow struct {
	Room  *Room
	Cells []CalendarCell
}

// Calendar occupancy projection for grid rendering
type Calendar struct {
	Dates    []time.Time
	Rooms    []*Room
	Bookings []*Booking
	Rows     []CalendarRow
}

// BuildCalendar projects bookings onto rooms × dates starting at from (inclusive).
// Cancelled bookings never occupy a cell; if several bookings cover the same night
// the first one in the given order wins.
func BuildCalendar(from time.Time, days int, rooms []*Room, bookings []*Booking) *Calendar {
	start := DateOnly(from)
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}

	byRoom := make(map[int64][]*Booking, len(rooms))
	for _, b := range bookings {
		if b.Status == StatusCancelled {
			continue
		}
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	rows := make([]CalendarRow, 0, len(rooms))
	for _, room := range rooms {
		cells := make([]CalendarCell, len(dates))
		for i, date := range dates {
			cells[i] = CalendarCell{Date: date}
			for _, b := range byRoom[room.ID] {
				if b.Covers(date) {
					cells[i].Booking = b
					break
				}
			}
		}
		rows = append(rows, CalendarRow{Room: room, Cells: cells})
	}

	return &Calendar{
		Dates:    dates,
		Rooms:    rooms,
		Bookings: bookings,
		Rows:     rows,
	}
}
