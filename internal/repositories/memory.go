package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
)

// MemoryStore is the simple-mode backend: fixture routes, bookings in
// a guarded slice, and seat layouts generated fresh on every lookup
// with the fixed occupied set. An optional per-call latency mimics the
// remote store it stands in for.
type MemoryStore struct {
	mu       sync.RWMutex
	routes   []models.Route
	bookings []models.Booking
	nextID   int64
	latency  time.Duration
}

func NewMemoryStore(latency time.Duration) *MemoryStore {
	return &MemoryStore{
		routes:  FixtureRoutes(),
		nextID:  1,
		latency: latency,
	}
}

// NewMemoryStoreWithRoutes replaces the fixture catalog, mainly for tests.
func NewMemoryStoreWithRoutes(routes []models.Route) *MemoryStore {
	return &MemoryStore{routes: routes, nextID: 1}
}

// Store exposes the memory backend behind the uniform contract.
func (m *MemoryStore) Store() Store {
	return Store{
		Routes:   memoryRoutes{m},
		Seats:    memorySeats{m},
		Bookings: memoryBookings{m},
	}
}

func (m *MemoryStore) simulate(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(m.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MemoryStore) routeByID(id int) (models.Route, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.routes {
		if r.ID == id {
			return r, true
		}
	}
	return models.Route{}, false
}

type memoryRoutes struct{ m *MemoryStore }

func (s memoryRoutes) Search(ctx context.Context, origin, destination string) ([]models.Route, error) {
	if err := s.m.simulate(ctx); err != nil {
		return nil, err
	}
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]models.Route, 0, len(s.m.routes))
	for _, r := range s.m.routes {
		if domain.MatchesSearch(r, origin, destination) {
			out = append(out, r)
		}
	}
	// HH:MM is zero-padded, so a plain string compare sorts by time.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureTime < out[j].DepartureTime
	})
	return out, nil
}

func (s memoryRoutes) GetByID(ctx context.Context, id int) (models.Route, error) {
	if err := s.m.simulate(ctx); err != nil {
		return models.Route{}, err
	}
	if r, ok := s.m.routeByID(id); ok {
		return r, nil
	}
	return models.Route{}, domain.NotFoundError{Resource: "route"}
}

func (s memoryRoutes) ListPopular(ctx context.Context, limit int) ([]models.Route, error) {
	if err := s.m.simulate(ctx); err != nil {
		return nil, err
	}
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]models.Route, len(s.m.routes))
	copy(out, s.m.routes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvailableSeats > out[j].AvailableSeats
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memorySeats struct{ m *MemoryStore }

// ListByRoute regenerates the layout on every call; nothing about a
// seat survives between lookups in this mode.
func (s memorySeats) ListByRoute(ctx context.Context, routeID int) ([]models.Seat, error) {
	if err := s.m.simulate(ctx); err != nil {
		return nil, err
	}
	if _, ok := s.m.routeByID(routeID); !ok {
		return nil, domain.NotFoundError{Resource: "route"}
	}
	return domain.GenerateSeatMap(routeID), nil
}

// Reserve acknowledges the requested seats but, because layouts are
// regenerated per lookup, the flip does not survive the next
// ListByRoute. The hosted store persists it. Known gap, kept.
func (s memorySeats) Reserve(ctx context.Context, routeID int, seatNumbers []string) ([]string, error) {
	if err := s.m.simulate(ctx); err != nil {
		return nil, err
	}
	if _, ok := s.m.routeByID(routeID); !ok {
		return nil, domain.NotFoundError{Resource: "route"}
	}
	layout := domain.SeatNumberSet(domain.GenerateSeatMap(routeID))

	reserved := make([]string, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		if _, ok := layout[strings.ToUpper(strings.TrimSpace(n))]; ok {
			reserved = append(reserved, n)
		}
	}
	if len(reserved) == 0 {
		return nil, domain.NotFoundError{Resource: "seats"}
	}
	return reserved, nil
}

type memoryBookings struct{ m *MemoryStore }

func (s memoryBookings) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	if err := s.m.simulate(ctx); err != nil {
		return models.Booking{}, err
	}
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	booking.ID = s.m.nextID
	s.m.nextID++
	booking.BookingReference = domain.BookingReference(booking.BookingDate, booking.ID)
	s.m.bookings = append(s.m.bookings, booking)
	return booking, nil
}

func (s memoryBookings) List(ctx context.Context) ([]models.Booking, error) {
	if err := s.m.simulate(ctx); err != nil {
		return nil, err
	}
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	out := make([]models.Booking, len(s.m.bookings))
	copy(out, s.m.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BookingDate.After(out[j].BookingDate)
	})
	return out, nil
}

func (s memoryBookings) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	if err := s.m.simulate(ctx); err != nil {
		return models.Booking{}, err
	}
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()

	for _, b := range s.m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (s memoryBookings) UpdateStatus(ctx context.Context, id int64, status string) (models.Booking, error) {
	if err := s.m.simulate(ctx); err != nil {
		return models.Booking{}, err
	}
	s.m.mu.Lock()
	defer s.m.mu.Unlock()

	for i := range s.m.bookings {
		if s.m.bookings[i].ID == id {
			s.m.bookings[i].Status = status
			return s.m.bookings[i], nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}
