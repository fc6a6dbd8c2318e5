package domain

import (
	"math"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// allowedTransitions is the booking state machine.
// Cancelled and completed bookings are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: nil,
	StatusCompleted: nil,
}

// IsValid reports whether the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether a booking in status s may move to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlocksRoom reports whether a booking in this status occupies its room
func (s BookingStatus) BlocksRoom() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents a room reservation
type Booking struct {
	ID           int64
	RoomID       int64
	UserID       int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalPrice   float64
	Status       BookingStatus

	// Denormalized data for display
	RoomName         string
	GuestFirstName   string
	GuestLastName    string
	GuestDisplayName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the room
func (b *Booking) IsActive() bool {
	return b.Status.BlocksRoom()
}

// Nights returns the number of nights between check-in and check-out
func (b *Booking) Nights() int {
	return Nights(b.CheckInDate, b.CheckOutDate)
}

// Covers reports whether the booking occupies the night starting at date
func (b *Booking) Covers(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.CheckInDate)) && d.Before(DateOnly(b.CheckOutDate))
}

// GuestName returns the best available display name of the guest
func (b *Booking) GuestName() string {
	if b.GuestDisplayName != "" {
		return b.GuestDisplayName
	}
	if b.GuestLastName == "" {
		return b.GuestFirstName
	}
	return b.GuestFirstName + " " + b.GuestLastName
}

// BookingsFilter filters bookings at the repository level
type BookingsFilter struct {
	RoomID *int64
	UserID *int64
	Status *BookingStatus
}

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights counts whole calendar days between check-in and check-out
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least one night
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// TotalPrice returns nights * pricePerNight rounded to cents
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) float64 {
	return math.Round(float64(Nights(checkIn, checkOut))*pricePerNight*100) / 100
}

// ValidDateRange reports whether check-out is strictly after check-in
func ValidDateRange(checkIn, checkOut time.Time) bool {
	return DateOnly(checkOut).After(DateOnly(checkIn))
}
