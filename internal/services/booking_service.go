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

// BookingInput is the create payload. TravelDate is optional and
// defaults to today; seats and passengers must pair up one to one.
// TotalPrice is optional: the server always reprices from the seat
// layout, and a non-zero client total that disagrees is rejected
// rather than silently replaced.
type BookingInput struct {
	RouteID    int                `json:"routeId"`
	Seats      []string           `json:"seats"`
	Passengers []models.Passenger `json:"passengers"`
	TotalPrice float64            `json:"totalPrice"`
	TravelDate string             `json:"travelDate"`
}

type BookingService struct {
	Routes    repositories.RouteStore
	Seats     repositories.SeatStore
	Bookings  repositories.BookingStore
	RequestID string
	Now       func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create validates the payload, prices the seats off the route's
// layout, and persists a confirmed booking. The created record carries
// the generated reference and the inline ticket graphic.
//
// Seats already sold are not re-checked here; the reserve endpoint is
// the only gate and the two paths stay independent.
func (s BookingService) Create(ctx context.Context, input BookingInput, createdBy string) (models.Booking, error) {
	seats := utils.CleanSeatNumbers(input.Seats)
	if len(seats) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "select at least one seat"}
	}
	if len(seats) > domain.MaxSeatsPerBooking {
		return models.Booking{}, domain.ValidationError{
			Field: "seats",
			Msg:   fmt.Sprintf("at most %d seats per booking", domain.MaxSeatsPerBooking),
		}
	}
	if len(input.Passengers) != len(seats) {
		return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "one passenger per seat"}
	}
	if fields := ValidatePassengerDetails(input.Passengers); len(fields) > 0 {
		return models.Booking{}, domain.ValidationError{
			Field:  "passengers",
			Msg:    "invalid passenger details",
			Fields: fields,
		}
	}

	route, err := s.Routes.GetByID(ctx, input.RouteID)
	if err != nil {
		return models.Booking{}, err
	}

	// Price off the same layout the store serves to clients, so the
	// total always equals the sum of the seats they were shown.
	layoutSeats, err := s.Seats.ListByRoute(ctx, route.ID)
	if err != nil {
		return models.Booking{}, err
	}
	layout := domain.SeatNumberSet(layoutSeats)
	total := 0.0
	for _, n := range seats {
		seat, ok := layout[n]
		if !ok {
			return models.Booking{}, domain.ValidationError{Field: "seats", Msg: fmt.Sprintf("unknown seat %s", n)}
		}
		total += seat.Price
	}
	if input.TotalPrice != 0 && input.TotalPrice != total {
		return models.Booking{}, domain.ValidationError{
			Field: "totalPrice",
			Msg:   fmt.Sprintf("expected %s for the selected seats", utils.FormatMoney(total)),
		}
	}

	bookedAt := s.now()
	travelDate := utils.TrimOrEmpty(input.TravelDate)
	if travelDate == "" {
		travelDate = utils.FormatDate(bookedAt)
	} else if _, err := utils.ParseDate(travelDate); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "travelDate", Msg: "Invalid date format"}
	}

	created, err := s.Bookings.Create(ctx, models.Booking{
		RouteID:     route.ID,
		Seats:       seats,
		Passengers:  input.Passengers,
		TotalPrice:  total,
		Status:      models.BookingConfirmed,
		BookingDate: bookedAt,
		TravelDate:  travelDate,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return models.Booking{}, err
	}
	created.TicketImage = TicketDataURI(created.BookingReference)

	metrics.BookingsCreated.Inc()
	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("booking_id=%d route_id=%d seats=%d", created.ID, route.ID, len(seats)))
	return created, nil
}

// List returns every booking, newest first.
func (s BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		bookings[i].TicketImage = TicketDataURI(bookings[i].BookingReference)
	}
	return bookings, nil
}

func (s BookingService) GetByID(ctx context.Context, id int64) (models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	booking.TicketImage = TicketDataURI(booking.BookingReference)
	return booking, nil
}

// Cancel flips the booking's status and nothing else. Seats on the
// route are not released and the record is kept.
func (s BookingService) Cancel(ctx context.Context, id int64) (models.Booking, error) {
	booking, err := s.Bookings.UpdateStatus(ctx, id, models.BookingCancelled)
	if err != nil {
		return models.Booking{}, err
	}
	booking.TicketImage = TicketDataURI(booking.BookingReference)
	metrics.BookingsCancelled.Inc()
	utils.LogEvent(s.RequestID, "bookings", "cancel", fmt.Sprintf("booking_id=%d", id))
	return booking, nil
}

// ETicket renders the PDF for a booking along with its route details.
func (s BookingService) ETicket(ctx context.Context, id int64) ([]byte, string, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	route, err := s.Routes.GetByID(ctx, booking.RouteID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "bookings", "eticket", fmt.Sprintf("booking_id=%d", id))
	return BuildETicketPDF(booking, route)
}

// QRCode renders the scannable reference image for a booking.
func (s BookingService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return TicketQR(booking)
}
