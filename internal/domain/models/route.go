package models

// Route is one scheduled trip offering between an origin and a
// destination. Routes are immutable once listed: they are created by
// seed data or the hosted store and never mutated by this service.
type Route struct {
	ID             int      `json:"id"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	Operator       string   `json:"operator"`
	BusType        string   `json:"busType"`
	DepartureTime  string   `json:"departureTime"` // HH:MM, 24h, zero-padded
	ArrivalTime    string   `json:"arrivalTime"`
	Duration       string   `json:"duration"` // display string, e.g. "4h 30m"
	Price          float64  `json:"price"`    // per seat
	AvailableSeats int      `json:"availableSeats"`
	Amenities      []string `json:"amenities"` // free text, e.g. "Free WiFi"
}
