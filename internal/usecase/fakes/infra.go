package fakes

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HotelBookingService/internal/domain"
)

// TxManager runs functions "transactionally" against a Store:
// on error the store is restored to its state before the call.
type TxManager struct {
	store *Store
	// Err, when set, is returned without running the function (failed BEGIN)
	Err   error
	Calls int
}

// NewTxManager creates a transaction manager bound to store
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do implements the transaction manager
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable implements the transaction manager
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly implements the transaction manager
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}

	snapshot := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snapshot)
		return err
	}
	return nil
}

type storeState struct {
	nextID   int64
	rooms    map[int64]domain.Room
	users    map[int64]domain.User
	bookings map[int64]domain.Booking
}

func (s *Store) snapshot() storeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := storeState{
		nextID:   s.nextID,
		rooms:    make(map[int64]domain.Room, len(s.rooms)),
		users:    make(map[int64]domain.User, len(s.users)),
		bookings: make(map[int64]domain.Booking, len(s.bookings)),
	}
	for id, r := range s.rooms {
		st.rooms[id] = *r
	}
	for id, u := range s.users {
		st.users[id] = *u
	}
	for id, b := range s.bookings {
		st.bookings[id] = *b
	}
	return st
}

func (s *Store) restore(st storeState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = st.nextID
	s.rooms = make(map[int64]*domain.Room, len(st.rooms))
	for id, r := range st.rooms {
		r := r
		s.rooms[id] = &r
	}
	s.users = make(map[int64]*domain.User, len(st.users))
	for id, u := range st.users {
		u := u
		s.users[id] = &u
	}
	s.bookings = make(map[int64]*domain.Booking, len(st.bookings))
	for id, b := range st.bookings {
		b := b
		s.bookings[id] = &b
	}
}

// Metrics records business metric calls
type Metrics struct {
	mu            sync.Mutex
	Created       map[string]int
	StatusChanges map[string]int
	Conflicts     int
}

// NewMetrics creates an empty recorder
func NewMetrics() *Metrics {
	return &Metrics{Created: map[string]int{}, StatusChanges: map[string]int{}}
}

// BookingCreated implements the metrics sink
func (m *Metrics) BookingCreated(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created[source]++
}

// BookingStatusChanged implements the metrics sink
func (m *Metrics) BookingStatusChanged(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatusChanges[status]++
}

// BookingConflict implements the metrics sink
func (m *Metrics) BookingConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Conflicts++
}

// Clock is a fixed time provider
type Clock struct {
	T time.Time
}

// Now implements the time provider
func (c Clock) Now() time.Time { return c.T }

// Logger discards everything
type Logger struct{}

func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}

// Date returns midnight UTC of the given calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
