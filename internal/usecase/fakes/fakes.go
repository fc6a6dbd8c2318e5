// Package fakes provides in-memory stand-ins for the repositories and
// infrastructure that use cases and services depend on. Used by tests only.
package fakes

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
	bookingRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/room"
	userRepo "github.com/m04kA/HotelBookingService/internal/infra/storage/user"
)

// Store is an in-memory database holding rooms, users and bookings.
// It enforces the same foreign keys and overlap exclusion as the real schema.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	rooms    map[int64]*domain.Room
	users    map[int64]*domain.User
	bookings map[int64]*domain.Booking

	// Err, when set, is returned by every booking write
	Err error
	// UserErr, when set, is returned by user Create
	UserErr error
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		rooms:    make(map[int64]*domain.Room),
		users:    make(map[int64]*domain.User),
		bookings: make(map[int64]*domain.Booking),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddRoom inserts a room and returns it with its ID
func (s *Store) AddRoom(name, roomType string, price float64) *domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	room := &domain.Room{ID: s.id(), Name: name, Type: roomType, Capacity: 2, PricePerNight: price, Description: name}
	s.rooms[room.ID] = room
	return room
}

// AddUser inserts an account and returns it with its ID
func (s *Store) AddUser(firstName, lastName string, role domain.Role) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &domain.User{
		ID:          s.id(),
		Username:    strings.ToLower(firstName),
		Email:       strings.ToLower(firstName) + "@example.com",
		FirstName:   firstName,
		LastName:    lastName,
		DisplayName: strings.TrimSpace(firstName + " " + lastName),
		Role:        role,
	}
	s.users[user.ID] = user
	return user
}

// Bookings returns copies of all stored bookings ordered by ID
func (s *Store) Bookings() []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, s.denormalize(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Users returns the number of stored accounts
func (s *Store) Users() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Rooms exposes the room repository view of the store
func (s *Store) Rooms() *Rooms { return &Rooms{s: s} }

// UserRepo exposes the user repository view of the store
func (s *Store) UserRepo() *Users { return &Users{s: s} }

func (s *Store) denormalize(b *domain.Booking) *domain.Booking {
	c := *b
	if room, ok := s.rooms[b.RoomID]; ok {
		c.RoomName = room.Name
	}
	if user, ok := s.users[b.UserID]; ok {
		c.GuestFirstName = user.FirstName
		c.GuestLastName = user.LastName
		c.GuestDisplayName = user.DisplayName
	}
	return &c
}

func (s *Store) checkRefs(b *domain.Booking) error {
	if _, ok := s.rooms[b.RoomID]; !ok {
		return bookingRepo.ErrReferenceNotFound
	}
	if _, ok := s.users[b.UserID]; !ok {
		return bookingRepo.ErrReferenceNotFound
	}
	return nil
}

// conflicts mirrors the bookings_no_overlap exclusion constraint
func (s *Store) conflicts(b *domain.Booking) bool {
	if !b.Status.BlocksRoom() {
		return false
	}
	for _, other := range s.bookings {
		if other.ID == b.ID || other.RoomID != b.RoomID || !other.Status.BlocksRoom() {
			continue
		}
		if domain.Overlaps(other.CheckInDate, other.CheckOutDate, b.CheckInDate, b.CheckOutDate) {
			return true
		}
	}
	return false
}

// Create implements the booking repository
func (s *Store) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.checkRefs(booking); err != nil {
		return nil, err
	}
	if s.conflicts(booking) {
		return nil, bookingRepo.ErrOverlap
	}
	booking.ID = s.id()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	stored := *booking
	s.bookings[stored.ID] = &stored
	return booking, nil
}

// GetByID implements the booking repository
func (s *Store) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return s.denormalize(b), nil
}

// GetAll implements the booking repository, ordered by check-in desc, id desc
func (s *Store) GetAll(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		out = append(out, s.denormalize(b))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckInDate.Equal(out[j].CheckInDate) {
			return out[i].CheckInDate.After(out[j].CheckInDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetByUserID implements the booking repository
func (s *Store) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	return s.GetAll(ctx, domain.BookingsFilter{UserID: &userID})
}

// GetActiveByRoom implements the booking repository
func (s *Store) GetActiveByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	all, err := s.GetAll(ctx, domain.BookingsFilter{RoomID: &roomID})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Booking, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].IsActive() {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// GetLatest implements the booking repository
func (s *Store) GetLatest(ctx context.Context, limit int) ([]*domain.Booking, error) {
	all, err := s.GetAll(ctx, domain.BookingsFilter{})
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// CountByRoom implements the booking repository
func (s *Store) CountByRoom(_ context.Context, roomID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count, nil
}

// Update implements the booking repository
func (s *Store) Update(_ context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if err := s.checkRefs(booking); err != nil {
		return err
	}
	if s.conflicts(booking) {
		return bookingRepo.ErrOverlap
	}
	stored := *booking
	stored.UpdatedAt = time.Now()
	s.bookings[stored.ID] = &stored
	return nil
}

// UpdateStatus implements the booking repository
func (s *Store) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

// Delete implements the booking repository
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

// GetStats implements the dashboard stats repository
func (s *Store) GetStats(_ context.Context, today time.Time) (*domain.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &domain.DashboardStats{TotalRooms: len(s.rooms), TotalBookings: len(s.bookings)}
	for _, b := range s.bookings {
		if b.Status == domain.StatusPending {
			stats.PendingBookings++
		}
		if b.Status == domain.StatusConfirmed && domain.DateOnly(b.CheckInDate).Equal(domain.DateOnly(today)) {
			stats.TodayCheckIns++
		}
	}
	return stats, nil
}

// Rooms is the room repository view of a Store
type Rooms struct {
	s *Store
}

// Create implements the room repository
func (r *Rooms) Create(_ context.Context, room *domain.Room) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room.ID = r.s.id()
	stored := *room
	r.s.rooms[stored.ID] = &stored
	return room, nil
}

// GetByID implements the room repository
func (r *Rooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	c := *room
	return &c, nil
}

// GetAll implements the room repository
func (r *Rooms) GetAll(_ context.Context) ([]*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*domain.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		c := *room
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update implements the room repository
func (r *Rooms) Update(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rooms[room.ID]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	stored := *room
	r.s.rooms[stored.ID] = &stored
	return nil
}

// Delete implements the room repository, refusing rooms that bookings reference
func (r *Rooms) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	for _, b := range r.s.bookings {
		if b.RoomID == id {
			return roomRepo.ErrRoomInUse
		}
	}
	delete(r.s.rooms, id)
	return nil
}

// Count implements the room repository
func (r *Rooms) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.rooms), nil
}

// Users is the user repository view of a Store
type Users struct {
	s *Store
}

// Create implements the user repository
func (u *Users) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	if u.s.UserErr != nil {
		return nil, u.s.UserErr
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range u.s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, userRepo.ErrDuplicateUser
		}
	}
	user.ID = u.s.id()
	stored := *user
	u.s.users[stored.ID] = &stored
	return user, nil
}

// GetByID implements the user repository
func (u *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	user, ok := u.s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	c := *user
	return &c, nil
}

// GetByEmail implements the user repository
func (u *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range u.s.users {
		if user.Email == email {
			c := *user
			return &c, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}
