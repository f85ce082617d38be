package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	intdb "routerider/internal/db"
	"routerider/internal/domain"
	"routerider/internal/domain/models"
)

const bookingColumns = `id, route_id, seats, passengers, total_price, status,
	booking_date, travel_date, booking_reference, created_by`

// BookingRepo persists bookings in MySQL. Seat numbers are stored
// newline-joined and passengers as a JSON document, the same flattened
// shape the hosted record API used.
type BookingRepo struct {
	DB *sql.DB
}

func (r BookingRepo) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	passengers, err := json.Marshal(booking.Passengers)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "encode passengers", Err: err}
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking create", Err: err}
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bookings (route_id, seats, passengers, total_price, status,
			booking_date, travel_date, booking_reference, created_by)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		booking.RouteID,
		strings.Join(booking.Seats, "\n"),
		string(passengers),
		booking.TotalPrice,
		booking.Status,
		booking.BookingDate,
		booking.TravelDate,
		nil, // reference needs the assigned id, set below
		intdb.NullIfEmpty(booking.CreatedBy),
	)
	if err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking create", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking create", Err: err}
	}

	reference := domain.BookingReference(booking.BookingDate, id)
	if _, err := tx.ExecContext(ctx, `UPDATE bookings SET booking_reference=? WHERE id=?`, reference, id); err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking create", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking create", Err: err}
	}

	booking.ID = id
	booking.BookingReference = reference
	return booking, nil
}

func (r BookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+bookingColumns+`
		FROM bookings
		ORDER BY booking_date DESC, id DESC`)
	if err != nil {
		return nil, domain.RemoteError{Op: "booking list", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return out, domain.RemoteError{Op: "booking list", Err: err}
	}
	return out, nil
}

func (r BookingRepo) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if domain.IsRemote(err) && errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// UpdateStatus flips only the status column; everything else on the
// record stays as booked.
func (r BookingRepo) UpdateStatus(ctx context.Context, id int64, status string) (models.Booking, error) {
	if _, err := r.DB.ExecContext(ctx, `UPDATE bookings SET status=? WHERE id=?`, status, id); err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking update", Err: err}
	}
	// MySQL reports zero affected rows for a same-value flip too, so a
	// re-read settles both "missing" and "already cancelled".
	return r.GetByID(ctx, id)
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b          models.Booking
		seats      string
		passengers string
		bookedAt   time.Time
		reference  sql.NullString
		createdBy  sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.RouteID, &seats, &passengers, &b.TotalPrice, &b.Status,
		&bookedAt, &b.TravelDate, &reference, &createdBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.RemoteError{Op: "booking scan", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.RemoteError{Op: "booking scan", Err: err}
	}
	b.BookingDate = bookedAt
	b.BookingReference = reference.String
	b.CreatedBy = createdBy.String
	b.Seats = splitLines(seats)
	if strings.TrimSpace(passengers) != "" {
		if err := json.Unmarshal([]byte(passengers), &b.Passengers); err != nil {
			return models.Booking{}, domain.InternalError{Msg: "decode passengers", Err: err}
		}
	}
	return b, nil
}
