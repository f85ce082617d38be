package models

import "time"

const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Passenger is captured per booked seat and lives only inside its
// booking; it is never persisted independently.
type Passenger struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	SeatNumber string `json:"seatNumber"`
}

// Booking is a confirmed or cancelled purchase of 1-4 seats for named
// passengers. Cancellation flips Status and nothing else: seats,
// passengers and totals stay as booked, and records are never deleted.
type Booking struct {
	ID               int64       `json:"id"`
	RouteID          int         `json:"routeId"`
	Seats            []string    `json:"seats"` // ordered seat numbers, matches Passengers
	Passengers       []Passenger `json:"passengers"`
	TotalPrice       float64     `json:"totalPrice"`
	Status           string      `json:"status"`
	BookingDate      time.Time   `json:"bookingDate"`
	TravelDate       string      `json:"travelDate"` // YYYY-MM-DD
	BookingReference string      `json:"bookingReference"`
	CreatedBy        string      `json:"-"` // subject of the external identity token, when present

	// TicketImage is attached to create responses only, never stored.
	// The JSON key keeps the legacy client contract.
	TicketImage string `json:"qrCode,omitempty"`
}
