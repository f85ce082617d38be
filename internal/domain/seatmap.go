package domain

import (
	"fmt"

	"routerider/internal/domain/models"
)

const (
	SeatRows    = 10
	SeatColumns = 4
	SeatCount   = SeatRows * SeatColumns

	// MaxSeatsPerBooking caps a selection and a booking alike.
	MaxSeatsPerBooking = 4

	// FlatSeatPrice is the per-seat price in the generated (in-memory)
	// layout. The hosted store prices seats from their persisted rows
	// instead.
	FlatSeatPrice = 45
)

// occupiedSeatIDs is the fixed pre-occupied set, identical for every
// route and every call. There is no real inventory behind it; replace
// the seat store before reusing this as an availability source.
var occupiedSeatIDs = map[int]bool{
	2: true, 7: true, 12: true, 18: true, 27: true, 38: true,
}

var columnLetters = [SeatColumns + 1]string{"", "A", "B", "C", "D"}

// GenerateSeatMap deterministically produces the 40-seat layout for a
// route: 10 rows by 4 columns, row-major, id = (row-1)*4 + column.
// Columns 1 and 4 are window seats, 2 and 3 aisle seats.
func GenerateSeatMap(routeID int) []models.Seat {
	seats := make([]models.Seat, 0, SeatCount)
	for row := 1; row <= SeatRows; row++ {
		for col := 1; col <= SeatColumns; col++ {
			id := (row-1)*SeatColumns + col
			seatType := models.SeatTypeWindow
			if col == 2 || col == 3 {
				seatType = models.SeatTypeAisle
			}
			status := models.SeatAvailable
			if occupiedSeatIDs[id] {
				status = models.SeatOccupied
			}
			seats = append(seats, models.Seat{
				ID:      id,
				RouteID: routeID,
				Number:  fmt.Sprintf("%d%s", row, columnLetters[col]),
				Type:    seatType,
				Status:  status,
				Price:   FlatSeatPrice,
				Row:     row,
				Column:  col,
			})
		}
	}
	return seats
}

// SeatNumberSet indexes a layout by seat number label.
func SeatNumberSet(seats []models.Seat) map[string]models.Seat {
	out := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		out[s.Number] = s
	}
	return out
}
