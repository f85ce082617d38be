package repositories

import (
	"context"
	"testing"
	"time"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
)

func TestMemoryRoutesSearchOrdersByDeparture(t *testing.T) {
	store := NewMemoryStoreWithRoutes([]models.Route{
		{ID: 1, Origin: "Austin", Destination: "Dallas", DepartureTime: "14:00"},
		{ID: 2, Origin: "Austin", Destination: "Dallas", DepartureTime: "06:30"},
		{ID: 3, Origin: "Austin", Destination: "Houston", DepartureTime: "08:00"},
	}).Store()

	got, err := store.Routes.Search(context.Background(), "austin", "dal")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("not ordered by departure: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestMemoryRoutesSearchEmptyMatchesAll(t *testing.T) {
	store := NewMemoryStore(0).Store()

	got, err := store.Routes.Search(context.Background(), "", "")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != len(FixtureRoutes()) {
		t.Fatalf("expected full catalog, got %d routes", len(got))
	}
}

func TestMemoryRoutesListPopularTruncates(t *testing.T) {
	store := NewMemoryStoreWithRoutes([]models.Route{
		{ID: 1, AvailableSeats: 5},
		{ID: 2, AvailableSeats: 30},
		{ID: 3, AvailableSeats: 12},
	}).Store()

	got, err := store.Routes.ListPopular(context.Background(), 2)
	if err != nil {
		t.Fatalf("popular error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("not ordered by availability: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestMemoryRoutesGetByIDMissing(t *testing.T) {
	store := NewMemoryStore(0).Store()

	_, err := store.Routes.GetByID(context.Background(), 9999)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemorySeatsLayoutIsStateless(t *testing.T) {
	store := NewMemoryStore(0).Store()

	first, err := store.Seats.ListByRoute(context.Background(), 1)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if _, err := store.Seats.Reserve(context.Background(), 1, []string{"1A"}); err != nil {
		t.Fatalf("reserve error: %v", err)
	}
	second, err := store.Seats.ListByRoute(context.Background(), 1)
	if err != nil {
		t.Fatalf("relist error: %v", err)
	}
	for i := range first {
		if first[i].Status != second[i].Status {
			t.Fatalf("seat %s changed status across lookups", first[i].Number)
		}
	}
}

func TestMemorySeatsReserveUnknownRoute(t *testing.T) {
	store := NewMemoryStore(0).Store()

	_, err := store.Seats.Reserve(context.Background(), 9999, []string{"1A"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryBookingsCreateAssignsSequentialReferences(t *testing.T) {
	store := NewMemoryStore(0).Store()
	bookedAt := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	first, err := store.Bookings.Create(context.Background(), models.Booking{
		RouteID: 1, Seats: []string{"1A"}, BookingDate: bookedAt,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	second, err := store.Bookings.Create(context.Background(), models.Booking{
		RouteID: 2, Seats: []string{"2B"}, BookingDate: bookedAt,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if first.BookingReference != "RR-2026-001" {
		t.Fatalf("unexpected first reference %s", first.BookingReference)
	}
	if second.BookingReference != "RR-2026-002" {
		t.Fatalf("unexpected second reference %s", second.BookingReference)
	}
}

func TestMemoryBookingsListNewestFirst(t *testing.T) {
	store := NewMemoryStore(0).Store()
	older := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	if _, err := store.Bookings.Create(context.Background(), models.Booking{RouteID: 1, BookingDate: older}); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := store.Bookings.Create(context.Background(), models.Booking{RouteID: 2, BookingDate: newer}); err != nil {
		t.Fatalf("create error: %v", err)
	}

	got, err := store.Bookings.List(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if got[0].RouteID != 2 {
		t.Fatalf("expected newest booking first, got route %d", got[0].RouteID)
	}
}

func TestMemoryBookingsUpdateStatusFlipsOnlyStatus(t *testing.T) {
	store := NewMemoryStore(0).Store()
	created, err := store.Bookings.Create(context.Background(), models.Booking{
		RouteID:     1,
		Seats:       []string{"1A"},
		TotalPrice:  45,
		Status:      models.BookingConfirmed,
		BookingDate: time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	updated, err := store.Bookings.UpdateStatus(context.Background(), created.ID, models.BookingCancelled)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.Status != models.BookingCancelled {
		t.Fatalf("status not flipped: %s", updated.Status)
	}
	if updated.BookingReference != created.BookingReference || updated.TotalPrice != created.TotalPrice {
		t.Fatalf("cancel touched more than the status: %+v", updated)
	}
}

func TestMemoryStoreHonorsContextCancel(t *testing.T) {
	store := NewMemoryStore(50 * time.Millisecond).Store()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Routes.Search(ctx, "", ""); err == nil {
		t.Fatal("expected context error")
	}
}
