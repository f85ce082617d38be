package repositories

import (
	"context"

	"routerider/internal/domain/models"
)

// RouteStore lists and resolves routes. Search matches origin and
// destination as case-insensitive substrings (empty matches all) and
// returns results ordered by departure time ascending; ListPopular
// orders by available seats descending and truncates to limit before
// any category filtering happens upstream.
type RouteStore interface {
	Search(ctx context.Context, origin, destination string) ([]models.Route, error)
	GetByID(ctx context.Context, id int) (models.Route, error)
	ListPopular(ctx context.Context, limit int) ([]models.Route, error)
}

// SeatStore exposes a route's seat layout plus the standalone reserve
// operation. Booking creation does not consult Reserve; the two paths
// are intentionally unintegrated.
type SeatStore interface {
	ListByRoute(ctx context.Context, routeID int) ([]models.Seat, error)
	Reserve(ctx context.Context, routeID int, seatNumbers []string) ([]string, error)
}

// BookingStore persists booking records. Create assigns the id and the
// booking reference; UpdateStatus is the only mutation afterwards and
// records are never deleted.
type BookingStore interface {
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	GetByID(ctx context.Context, id int64) (models.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status string) (models.Booking, error)
}

// Store bundles the three resources behind one injection point,
// selected at startup (memory fixture or MySQL) and never reachable
// through package-level state.
type Store struct {
	Routes   RouteStore
	Seats    SeatStore
	Bookings BookingStore
}
