// Package flow drives the four-step booking wizard server-side. A
// session walks search, seats, booking, confirmation in order; each
// forward move has a guard and nothing skips a step. Sessions live in
// memory only and vanish on restart.
package flow

import (
	"context"
	"sync"
	"time"

	"routerider/internal/domain"
	"routerider/internal/domain/models"
	"routerider/internal/services"
)

type Step string

const (
	StepSearch       Step = "search"
	StepSeats        Step = "seats"
	StepBooking      Step = "booking"
	StepConfirmation Step = "confirmation"
)

// transitions is the complete move table. Anything not listed is
// rejected with a conflict.
var transitions = map[Step]map[Step]bool{
	StepSearch:       {StepSeats: true},
	StepSeats:        {StepBooking: true, StepSearch: true},
	StepBooking:      {StepConfirmation: true, StepSeats: true},
	StepConfirmation: {StepSearch: true},
}

// backward is where Back lands from each step.
var backward = map[Step]Step{
	StepSeats:   StepSearch,
	StepBooking: StepSeats,
}

// Session is one user's walk through the wizard. All mutations hold
// the session lock, so two racing requests on the same session
// serialize instead of clobbering each other.
type Session struct {
	ID string

	now func() time.Time

	mu         sync.Mutex
	step       Step
	route      *models.Route
	layout     []models.Seat
	selection  []models.Seat
	booking    *models.Booking
	lastActive time.Time
}

// Snapshot is the read view handed to clients.
type Snapshot struct {
	ID            string          `json:"id"`
	Step          Step            `json:"step"`
	Route         *models.Route   `json:"route,omitempty"`
	SelectedSeats []string        `json:"selectedSeats"`
	TotalPrice    float64         `json:"totalPrice"`
	Booking       *models.Booking `json:"booking,omitempty"`
}

func newSession(id string, now func() time.Time) *Session {
	return &Session{ID: id, now: now, step: StepSearch, lastActive: now()}
}

func (s *Session) move(to Step) error {
	if !transitions[s.step][to] {
		return domain.ConflictError{Msg: "cannot move from " + string(s.step) + " to " + string(to)}
	}
	s.step = to
	return nil
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

// Snapshot returns the session's current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:            s.ID,
		Step:          s.step,
		Route:         s.route,
		SelectedSeats: make([]string, 0, len(s.selection)),
		TotalPrice:    s.totalLocked(),
		Booking:       s.booking,
	}
	for _, seat := range s.selection {
		snap.SelectedSeats = append(snap.SelectedSeats, seat.Number)
	}
	return snap
}

func (s *Session) totalLocked() float64 {
	total := 0.0
	for _, seat := range s.selection {
		total += seat.Price
	}
	return total
}

// SelectRoute picks the route to book and advances to seat selection.
// Changing the route always starts from an empty selection.
func (s *Session) SelectRoute(ctx context.Context, routes services.RouteService, seats services.SeatService, routeID int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step != StepSearch {
		return Snapshot{}, domain.ConflictError{Msg: "route can only be chosen from the search step"}
	}
	route, err := routes.GetByID(ctx, routeID)
	if err != nil {
		return Snapshot{}, err
	}
	layout, err := seats.Layout(ctx, routeID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.move(StepSeats); err != nil {
		return Snapshot{}, err
	}
	s.route = &route
	s.layout = layout
	s.selection = nil
	s.booking = nil
	return s.snapshotLocked(), nil
}

// ToggleSeat adds the seat to the selection, or removes it when
// already selected. Occupied seats and a fifth seat are rejected
// without touching the selection.
func (s *Session) ToggleSeat(number string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step != StepSeats {
		return Snapshot{}, domain.ConflictError{Msg: "seats can only be toggled during seat selection"}
	}
	for i, sel := range s.selection {
		if sel.Number == number {
			s.selection = append(s.selection[:i], s.selection[i+1:]...)
			return s.snapshotLocked(), nil
		}
	}

	var seat *models.Seat
	for i := range s.layout {
		if s.layout[i].Number == number {
			seat = &s.layout[i]
			break
		}
	}
	if seat == nil {
		return Snapshot{}, domain.NotFoundError{Resource: "seat"}
	}
	if seat.Status == models.SeatOccupied {
		return Snapshot{}, domain.ConflictError{Msg: "seat unavailable"}
	}
	if len(s.selection) >= domain.MaxSeatsPerBooking {
		return Snapshot{}, domain.ConflictError{Msg: "seat limit reached"}
	}
	s.selection = append(s.selection, *seat)
	return s.snapshotLocked(), nil
}

// Continue advances from seat selection to passenger details. The
// selection must not be empty.
func (s *Session) Continue() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step != StepSeats {
		return Snapshot{}, domain.ConflictError{Msg: "continue only applies during seat selection"}
	}
	if len(s.selection) == 0 {
		return Snapshot{}, domain.ConflictError{Msg: "select at least one seat first"}
	}
	if err := s.move(StepBooking); err != nil {
		return Snapshot{}, err
	}
	return s.snapshotLocked(), nil
}

// Back steps to the previous wizard page. Leaving the booking step
// keeps the selection; leaving seat selection keeps the route so
// re-entering does not refetch.
func (s *Session) Back() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	prev, ok := backward[s.step]
	if !ok {
		return Snapshot{}, domain.ConflictError{Msg: "nothing to go back to"}
	}
	if err := s.move(prev); err != nil {
		return Snapshot{}, err
	}
	return s.snapshotLocked(), nil
}

// Submit takes the passenger details, creates the booking for the
// current route and selection, and lands on the confirmation step.
// Validation failures leave the session on the booking step.
func (s *Session) Submit(ctx context.Context, bookings services.BookingService, passengers []models.Passenger, travelDate, createdBy string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step != StepBooking {
		return Snapshot{}, domain.ConflictError{Msg: "submit only applies on the booking step"}
	}
	seats := make([]string, 0, len(s.selection))
	for _, seat := range s.selection {
		seats = append(seats, seat.Number)
	}
	created, err := bookings.Create(ctx, services.BookingInput{
		RouteID:    s.route.ID,
		Seats:      seats,
		Passengers: passengers,
		TravelDate: travelDate,
	}, createdBy)
	if err != nil {
		return Snapshot{}, err
	}
	if err := s.move(StepConfirmation); err != nil {
		return Snapshot{}, err
	}
	s.booking = &created
	return s.snapshotLocked(), nil
}

// Reset returns a confirmed session to a fresh search, dropping the
// route, selection, and completed booking.
func (s *Session) Reset() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.step != StepConfirmation {
		return Snapshot{}, domain.ConflictError{Msg: "reset only applies after confirmation"}
	}
	if err := s.move(StepSearch); err != nil {
		return Snapshot{}, err
	}
	s.route = nil
	s.layout = nil
	s.selection = nil
	s.booking = nil
	return s.snapshotLocked(), nil
}
