package domain

// Business validation constants
const (
	MaxRoomNameLength        = 100
	MaxRoomTypeLength        = 50
	MaxRoomDescriptionLength = 500
	MinRoomCapacity          = 1
	MaxRoomCapacity          = 10
	MinPricePerNight         = 1
	MaxPricePerNight         = 10000
	MaxTotalPrice            = 100000
	MaxGuestNameLength       = 200
)

// Dashboard defaults
const (
	DefaultCalendarDays    = 30
	DefaultDashboardLatest = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking list sort keys
const (
	SortRoomAsc  = "room_asc"
	SortRoomDesc = "room_desc"
	SortDateAsc  = "date_asc"
	SortDateDesc = "date_desc"
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"

	// DefaultSortOrder is used when the sort key is absent or unknown
	DefaultSortOrder = SortDateDesc
)

// InactiveStatuses bookings in these statuses do not occupy the room
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses bookings in these statuses occupy the room
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
