package services

import (
	"context"
	"testing"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
	"routerider/internal/repositories"
)

func routeStoreWith(routes []models.Route) repositories.RouteStore {
	return repositories.NewMemoryStoreWithRoutes(routes).Store().Routes
}

func TestRouteServiceSearchAppliesFilters(t *testing.T) {
	svc := RouteService{Routes: routeStoreWith([]models.Route{
		{ID: 1, Origin: "Austin", Destination: "Dallas", DepartureTime: "07:00", BusType: "Luxury Coach", Amenities: []string{"Free WiFi"}},
		{ID: 2, Origin: "Austin", Destination: "Dallas", DepartureTime: "13:00", BusType: "Standard", Amenities: []string{"Free WiFi"}},
		{ID: 3, Origin: "Austin", Destination: "Dallas", DepartureTime: "08:30", BusType: "Standard", Amenities: []string{"Restroom"}},
	})}

	got, err := svc.Search(context.Background(),
		domain.SearchQuery{Origin: "austin", Destination: "dallas"},
		domain.Filters{Amenities: []string{"wifi"}, TimeSlots: []string{domain.SlotMorning}},
	)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only route 1, got %+v", got)
	}
}

func TestRouteServiceSearchDateIsIgnored(t *testing.T) {
	svc := RouteService{Routes: routeStoreWith([]models.Route{
		{ID: 1, Origin: "Austin", Destination: "Dallas", DepartureTime: "07:00"},
	})}

	got, err := svc.Search(context.Background(),
		domain.SearchQuery{Origin: "austin", Destination: "dallas", Date: "1999-01-01"},
		domain.Filters{},
	)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("date should not narrow results, got %d", len(got))
	}
}

// The popular listing truncates to the limit first and filters after,
// so heavy filters can empty it even when matching routes exist past
// the cutoff.
func TestRouteServicePopularTruncatesBeforeFiltering(t *testing.T) {
	routes := make([]models.Route, 0, PopularLimit+1)
	for i := 1; i <= PopularLimit; i++ {
		routes = append(routes, models.Route{
			ID: i, AvailableSeats: 100 - i, BusType: "Standard", DepartureTime: "09:00",
		})
	}
	routes = append(routes, models.Route{
		ID: PopularLimit + 1, AvailableSeats: 1, BusType: "Sleeper Coach", DepartureTime: "09:00",
	})

	svc := RouteService{Routes: routeStoreWith(routes)}
	got, err := svc.Popular(context.Background(), domain.Filters{BusTypes: []string{"sleeper"}})
	if err != nil {
		t.Fatalf("popular error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected the sleeper route cut before filtering, got %+v", got)
	}
}

func TestRouteServiceGetByIDMissing(t *testing.T) {
	svc := RouteService{Routes: routeStoreWith(nil)}
	_, err := svc.GetByID(context.Background(), 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
