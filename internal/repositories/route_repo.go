package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
)

const routeColumns = `id, origin, destination, operator, bus_type,
	departure_time, arrival_time, duration, price, available_seats, amenities`

// RouteRepo serves the route catalog from MySQL.
type RouteRepo struct {
	DB *sql.DB
}

func (r RouteRepo) Search(ctx context.Context, origin, destination string) ([]models.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE LOWER(origin) LIKE ? AND LOWER(destination) LIKE ?
		ORDER BY departure_time ASC`

	rows, err := r.DB.QueryContext(ctx, query, likeParam(origin), likeParam(destination))
	if err != nil {
		return nil, domain.RemoteError{Op: "route search", Err: err}
	}
	defer rows.Close()
	return scanRoutes(rows)
}

func (r RouteRepo) GetByID(ctx context.Context, id int) (models.Route, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+routeColumns+` FROM routes WHERE id=? LIMIT 1`, id)
	route, err := scanRoute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Route{}, domain.NotFoundError{Resource: "route", Err: err}
	}
	if err != nil {
		return models.Route{}, domain.RemoteError{Op: "route lookup", Err: err}
	}
	return route, nil
}

func (r RouteRepo) ListPopular(ctx context.Context, limit int) ([]models.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		ORDER BY available_seats DESC
		LIMIT ?`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, domain.RemoteError{Op: "popular routes", Err: err}
	}
	defer rows.Close()
	return scanRoutes(rows)
}

func likeParam(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (models.Route, error) {
	var (
		route     models.Route
		amenities sql.NullString
	)
	err := row.Scan(
		&route.ID, &route.Origin, &route.Destination, &route.Operator, &route.BusType,
		&route.DepartureTime, &route.ArrivalTime, &route.Duration,
		&route.Price, &route.AvailableSeats, &amenities,
	)
	if err != nil {
		return models.Route{}, err
	}
	route.Amenities = splitLines(amenities.String)
	return route, nil
}

func scanRoutes(rows *sql.Rows) ([]models.Route, error) {
	out := []models.Route{}
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return out, domain.RemoteError{Op: "route scan", Err: err}
		}
		out = append(out, route)
	}
	if err := rows.Err(); err != nil {
		return out, domain.RemoteError{Op: "route scan", Err: err}
	}
	return out, nil
}

func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
