package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"routerider/internal/domain"
)

func routeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "origin", "destination", "operator", "bus_type",
		"departure_time", "arrival_time", "duration", "price", "available_seats", "amenities",
	})
}

func TestRouteRepoSearchLowersAndWraps(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM routes").
		WithArgs("%new york%", "%boston%").
		WillReturnRows(routeRows().
			AddRow(1, "New York City", "Boston Station", "GreyLine Express", "Express",
				"08:00", "12:30", "4h 30m", 45.0, 32, "Free WiFi\nCharging Ports"))

	repo := RouteRepo{DB: db}
	routes, err := repo.Search(context.Background(), " New York ", "Boston")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].Origin != "New York City" {
		t.Fatalf("unexpected origin %q", routes[0].Origin)
	}
	if len(routes[0].Amenities) != 2 || routes[0].Amenities[1] != "Charging Ports" {
		t.Fatalf("amenities not split: %v", routes[0].Amenities)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRouteRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM routes WHERE id").
		WithArgs(99).
		WillReturnRows(routeRows())

	repo := RouteRepo{DB: db}
	_, err = repo.GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRouteRepoListPopularLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := routeRows().
		AddRow(9, "Seattle", "Portland", "Cascade Connect", "Standard",
			"11:20", "14:35", "3h 15m", 29.0, 38, "Free WiFi").
		AddRow(5, "Chicago", "Detroit", "Lakeshore Lines", "Standard",
			"06:30", "11:15", "4h 45m", 38.0, 35, "")
	mock.ExpectQuery("SELECT (.+) FROM routes(.+)ORDER BY available_seats DESC").
		WithArgs(12).
		WillReturnRows(rows)

	repo := RouteRepo{DB: db}
	routes, err := repo.ListPopular(context.Background(), 12)
	if err != nil {
		t.Fatalf("popular error: %v", err)
	}
	if len(routes) != 2 || routes[0].AvailableSeats < routes[1].AvailableSeats {
		t.Fatalf("unexpected popular result %+v", routes)
	}
}
