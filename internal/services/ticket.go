package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/yeqown/go-qrcode"

	"routerider/internal/domain/models"
	"routerider/internal/utils"
)

// TicketDataURI renders a small placeholder ticket graphic with the
// booking reference in the middle, inlined as a base64 SVG data URI so
// clients can show it without a second request.
func TicketDataURI(reference string) string {
	svg := `<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">` +
		`<rect width="200" height="200" fill="white"/>` +
		`<rect x="20" y="20" width="160" height="160" fill="black"/>` +
		`<rect x="40" y="40" width="120" height="120" fill="white"/>` +
		`<text x="100" y="105" text-anchor="middle" font-family="Arial" font-size="12" fill="black">` +
		reference + `</text></svg>`
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// TicketQR encodes the booking reference as a scannable code, returned
// as JPEG bytes.
func TicketQR(b models.Booking) ([]byte, error) {
	qrc, err := qrcode.New(b.BookingReference)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := qrc.SaveTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildETicketPDF renders the printable ticket for a booking, one page
// covering every seat on it. Returns the bytes plus a download name.
func BuildETicketPDF(b models.Booking, r models.Route) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference    : %s", safe(b.BookingReference, "-")),
		fmt.Sprintf("Route        : %s -> %s", safe(r.Origin, "-"), safe(r.Destination, "-")),
		fmt.Sprintf("Operator     : %s", safe(r.Operator, "-")),
		fmt.Sprintf("Departure    : %s %s", safe(b.TravelDate, "-"), safe(r.DepartureTime, "-")),
		fmt.Sprintf("Arrival      : %s", safe(r.ArrivalTime, "-")),
		fmt.Sprintf("Seats        : %s", safe(strings.Join(b.Seats, ", "), "-")),
		fmt.Sprintf("Total        : %s", utils.FormatMoney(b.TotalPrice)),
		fmt.Sprintf("Status       : %s", safe(b.Status, "-")),
		fmt.Sprintf("Booked at    : %s", utils.FormatDateTime(b.BookingDate)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range b.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%s  seat %s  %s", safe(p.Name, "-"), safe(p.SeatNumber, "-"), safe(p.Phone, "-")))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket and a photo ID at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(b.BookingReference))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteRune('_')
		}
	}
	if out.Len() == 0 {
		return "ticket"
	}
	return out.String()
}
