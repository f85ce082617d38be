package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intdb "routerider/internal/db"
	"routerider/internal/domain"
)

// EnsureSchema creates the hosted-mode tables when missing and seeds
// the route catalog (plus persisted seat rows) on first run.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}

	ddls := []string{
		`CREATE TABLE IF NOT EXISTS routes (
	id INT PRIMARY KEY,
	origin VARCHAR(120) NOT NULL,
	destination VARCHAR(120) NOT NULL,
	operator VARCHAR(120) NOT NULL,
	bus_type VARCHAR(60) NOT NULL,
	departure_time VARCHAR(5) NOT NULL,
	arrival_time VARCHAR(5) NOT NULL,
	duration VARCHAR(20) NOT NULL,
	price DECIMAL(10,2) NOT NULL,
	available_seats INT NOT NULL,
	amenities TEXT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS seats (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	route_id INT NOT NULL,
	seat_no INT NOT NULL,
	number VARCHAR(5) NOT NULL,
	seat_type VARCHAR(10) NOT NULL,
	status VARCHAR(12) NOT NULL DEFAULT 'available',
	price DECIMAL(10,2) NOT NULL,
	row_no INT NOT NULL,
	col_no INT NOT NULL,
	UNIQUE KEY uniq_route_seat (route_id, number),
	KEY idx_route (route_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
		`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	route_id INT NOT NULL,
	seats TEXT NOT NULL,
	passengers TEXT NOT NULL,
	total_price DECIMAL(10,2) NOT NULL,
	status VARCHAR(20) NOT NULL,
	booking_date DATETIME NOT NULL,
	travel_date VARCHAR(10) NOT NULL,
	booking_reference VARCHAR(32) NULL,
	created_by VARCHAR(64) NULL,
	UNIQUE KEY uniq_reference (booking_reference),
	KEY idx_booking_date (booking_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return seedRoutes(db)
}

func seedRoutes(db *sql.DB) error {
	if !intdb.HasTable(db, "routes") {
		return fmt.Errorf("routes table missing after ensure")
	}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM routes`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, r := range FixtureRoutes() {
		_, err := db.Exec(`
			INSERT INTO routes (id, origin, destination, operator, bus_type,
				departure_time, arrival_time, duration, price, available_seats, amenities)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			r.ID, r.Origin, r.Destination, r.Operator, r.BusType,
			r.DepartureTime, r.ArrivalTime, r.Duration, r.Price, r.AvailableSeats,
			strings.Join(r.Amenities, "\n"),
		)
		if err != nil {
			return err
		}
		// Hosted mode prices seats from their rows: seed the generated
		// layout at the route's own per-seat price.
		for _, seat := range domain.GenerateSeatMap(r.ID) {
			_, err := db.Exec(`
				INSERT INTO seats (route_id, seat_no, number, seat_type, status, price, row_no, col_no)
				VALUES (?,?,?,?,?,?,?,?)`,
				r.ID, seat.ID, seat.Number, seat.Type, seat.Status, r.Price, seat.Row, seat.Column,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
