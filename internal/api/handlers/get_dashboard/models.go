package get_dashboard

import (
	"github.com/m04kA/HotelBookingService/internal/domain"
	"github.com/m04kA/HotelBookingService/internal/service/bookings/models"
	getDashboard "github.com/m04kA/HotelBookingService/internal/usecase/get_dashboard"
	"github.com/m04kA/HotelBookingService/pkg/ptr"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Today    string                   `json:"today"`
	Stats    StatsResponse            `json:"stats"`
	Latest   []models.BookingResponse `json:"latestBookings"`
	Calendar CalendarResponse         `json:"calendar"`
}

type StatsResponse struct {
	TotalRooms      int `json:"totalRooms"`
	TotalBookings   int `json:"totalBookings"`
	PendingBookings int `json:"pendingBookings"`
	TodayCheckIns   int `json:"todayCheckIns"`
}

type CalendarResponse struct {
	Dates    []string                 `json:"dates"`
	Rooms    []CalendarRoom           `json:"rooms"`
	Bookings []models.BookingResponse `json:"bookings"`
	Rows     []CalendarRow            `json:"rows"`
}

type CalendarRoom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CalendarRow struct {
	RoomID   int64          `json:"roomId"`
	RoomName string         `json:"roomName"`
	Cells    []CalendarCell `json:"cells"`
}

// CalendarCell ночь номера; поля бронирования заполнены, если ночь занята
type CalendarCell struct {
	Date      string  `json:"date"`
	BookingID *int64  `json:"bookingId,omitempty"`
	Status    *string `json:"status,omitempty"`
	GuestName *string `json:"guestName,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	out := &DashboardResponse{
		Today: resp.Today.Format(domain.DateFormat),
		Stats: StatsResponse{
			TotalRooms:      resp.Stats.TotalRooms,
			TotalBookings:   resp.Stats.TotalBookings,
			PendingBookings: resp.Stats.PendingBookings,
			TodayCheckIns:   resp.Stats.TodayCheckIns,
		},
		Latest: models.FromDomainBookingList(resp.Latest).Bookings,
	}

	cal := resp.Calendar
	if cal == nil {
		return out
	}

	out.Calendar.Dates = make([]string, 0, len(cal.Dates))
	for _, d := range cal.Dates {
		out.Calendar.Dates = append(out.Calendar.Dates, d.Format(domain.DateFormat))
	}

	out.Calendar.Rooms = make([]CalendarRoom, 0, len(cal.Rooms))
	for _, room := range cal.Rooms {
		out.Calendar.Rooms = append(out.Calendar.Rooms, CalendarRoom{ID: room.ID, Name: room.Name, Type: room.Type})
	}

	out.Calendar.Bookings = models.FromDomainBookingList(cal.Bookings).Bookings

	out.Calendar.Rows = make([]CalendarRow, 0, len(cal.Rows))
	for _, row := range cal.Rows {
		cells := make([]CalendarCell, 0, len(row.Cells))
		for _, c := range row.Cells {
			cell := CalendarCell{Date: c.Date.Format(domain.DateFormat)}
			if c.IsOccupied() {
				cell.BookingID = ptr.Ptr(c.Booking.ID)
				cell.Status = ptr.Ptr(string(c.Booking.Status))
				cell.GuestName = ptr.Ptr(c.Booking.GuestName())
			}
			cells = append(cells, cell)
		}
		out.Calendar.Rows = append(out.Calendar.Rows, CalendarRow{
			RoomID:   row.Room.ID,
			RoomName: row.Room.Name,
			Cells:    cells,
		})
	}

	return out
}
