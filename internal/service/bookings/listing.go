package bookings

import (
	"sort"
	"strings"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// bookingLess сравнение для ключа сортировки по возрастанию
type bookingLess func(a, b *domain.Booking) bool

var sortKeys = map[string]struct {
	less bookingLess
	desc bool
}{
	domain.SortRoomAsc:  {less: byRoomName},
	domain.SortRoomDesc: {less: byRoomName, desc: true},
	domain.SortDateAsc:  {less: byCheckIn},
	domain.SortDateDesc: {less: byCheckIn, desc: true},
	domain.SortNameAsc:  {less: byGuestFirstName},
	domain.SortNameDesc: {less: byGuestFirstName, desc: true},
}

func byRoomName(a, b *domain.Booking) bool {
	return strings.ToLower(a.RoomName) < strings.ToLower(b.RoomName)
}

func byCheckIn(a, b *domain.Booking) bool {
	return a.CheckInDate.Before(b.CheckInDate)
}

func byGuestFirstName(a, b *domain.Booking) bool {
	return strings.ToLower(a.GuestFirstName) < strings.ToLower(b.GuestFirstName)
}

// NormalizeSortOrder возвращает известный ключ сортировки или ключ по умолчанию (date_desc)
func NormalizeSortOrder(sortOrder string) string {
	key := strings.ToLower(strings.TrimSpace(sortOrder))
	if _, ok := sortKeys[key]; ok {
		return key
	}
	return domain.DefaultSortOrder
}

// SortBookings сортирует бронирования на месте и возвращает примененный ключ
// Сортировка стабильная: при равенстве сохраняется порядок хранилища
func SortBookings(bookings []*domain.Booking, sortOrder string) string {
	key := NormalizeSortOrder(sortOrder)
	k := sortKeys[key]

	sort.SliceStable(bookings, func(i, j int) bool {
		if k.desc {
			return k.less(bookings[j], bookings[i])
		}
		return k.less(bookings[i], bookings[j])
	})

	return key
}
