package repositories

import (
	"context"
	"database/sql"
	"strings"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
)

// SeatRepo serves persisted seat rows from MySQL. Unlike the memory
// backend, seat state here survives between lookups, so Reserve has a
// lasting effect.
type SeatRepo struct {
	DB *sql.DB
}

func (r SeatRepo) ListByRoute(ctx context.Context, routeID int) ([]models.Seat, error) {
	query := `SELECT seat_no, route_id, number, seat_type, status, price, row_no, col_no
		FROM seats
		WHERE route_id = ?
		ORDER BY row_no ASC, col_no ASC`

	rows, err := r.DB.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, domain.RemoteError{Op: "seat lookup", Err: err}
	}
	defer rows.Close()

	out := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Number, &s.Type, &s.Status, &s.Price, &s.Row, &s.Column); err != nil {
			return out, domain.RemoteError{Op: "seat scan", Err: err}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return out, domain.RemoteError{Op: "seat scan", Err: err}
	}
	if len(out) == 0 {
		return nil, domain.NotFoundError{Resource: "route"}
	}
	return out, nil
}

// Reserve fetches the matching rows first and only then flips them to
// occupied, mirroring the two-step hosted API it replaces.
func (r SeatRepo) Reserve(ctx context.Context, routeID int, seatNumbers []string) ([]string, error) {
	numbers := normalizeSeatNumbers(seatNumbers)
	if len(numbers) == 0 {
		return nil, domain.ValidationError{Field: "seats", Msg: "no seats requested"}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(numbers)), ",")
	args := make([]any, 0, len(numbers)+1)
	args = append(args, routeID)
	for _, n := range numbers {
		args = append(args, n)
	}

	query := `SELECT number FROM seats WHERE route_id = ? AND number IN (` + placeholders + `)`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.RemoteError{Op: "seat reserve", Err: err}
	}
	found := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return nil, domain.RemoteError{Op: "seat reserve", Err: err}
		}
		found = append(found, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, domain.RemoteError{Op: "seat reserve", Err: err}
	}
	if len(found) == 0 {
		return nil, domain.NotFoundError{Resource: "seats"}
	}

	update := `UPDATE seats SET status = ? WHERE route_id = ? AND number IN (` + placeholders + `)`
	updateArgs := make([]any, 0, len(numbers)+2)
	updateArgs = append(updateArgs, models.SeatOccupied, routeID)
	for _, n := range numbers {
		updateArgs = append(updateArgs, n)
	}
	if _, err := r.DB.ExecContext(ctx, update, updateArgs...); err != nil {
		return nil, domain.RemoteError{Op: "seat reserve", Err: err}
	}
	return found, nil
}

func normalizeSeatNumbers(seatNumbers []string) []string {
	out := make([]string, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
