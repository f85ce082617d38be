package services

import (
	"context"
	"fmt"
	"time"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
	"routerider/internal/metrics"
	"routerider/internal/repositories"
	"routerider/internal/utils"
)

// ReservationTTL is how long a reservation acknowledgement is
// presented as valid. Nothing enforces the expiry server-side; the
// deadline exists so clients can run a countdown.
const ReservationTTL = 15 * time.Minute

type Reservation struct {
	ReservedSeats []string  `json:"reservedSeats"`
	ExpiresAt     time.Time `json:"expiresAt"`
}

type SeatService struct {
	Seats     repositories.SeatStore
	RequestID string
	Now       func() time.Time
}

func (s SeatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Layout returns the route's full seat grid in row order.
func (s SeatService) Layout(ctx context.Context, routeID int) ([]models.Seat, error) {
	return s.Seats.ListByRoute(ctx, routeID)
}

// Reserve acknowledges a set of seats on a route and stamps the
// acknowledgement with an expiry.
func (s SeatService) Reserve(ctx context.Context, routeID int, seatNumbers []string) (Reservation, error) {
	seatNumbers = utils.CleanSeatNumbers(seatNumbers)
	if len(seatNumbers) == 0 {
		return Reservation{}, domain.ValidationError{Field: "seats", Msg: "no seats requested"}
	}
	if len(seatNumbers) > domain.MaxSeatsPerBooking {
		return Reservation{}, domain.ValidationError{
			Field: "seats",
			Msg:   fmt.Sprintf("at most %d seats per booking", domain.MaxSeatsPerBooking),
		}
	}

	reserved, err := s.Seats.Reserve(ctx, routeID, seatNumbers)
	if err != nil {
		return Reservation{}, err
	}
	metrics.SeatReservations.Inc()
	utils.LogEvent(s.RequestID, "seats", "reserve",
		fmt.Sprintf("route_id=%d seats=%d", routeID, len(reserved)))
	return Reservation{
		ReservedSeats: reserved,
		ExpiresAt:     s.now().Add(ReservationTTL),
	}, nil
}
