package models

const (
	SeatAvailable = "available"
	SeatOccupied  = "occupied"

	SeatTypeWindow = "window"
	SeatTypeAisle  = "aisle"
)

// Seat is one purchasable position on a route's bus. In the in-memory
// store seats are generated fresh on every lookup; the hosted store
// persists them as rows.
type Seat struct {
	ID      int     `json:"id"` // unique within a route
	RouteID int     `json:"routeId"`
	Number  string  `json:"number"` // row label + column letter, e.g. "3B"
	Type    string  `json:"type"`   // window or aisle, from column position
	Status  string  `json:"status"`
	Price   float64 `json:"price"`
	Row     int     `json:"row"`    // 1-based
	Column  int     `json:"column"` // 1..4
}
