package repositories

import "routerider/internal/domain/models"

// FixtureRoutes is the static route catalog backing the in-memory
// store. The same records seed the MySQL store on first run so both
// backends answer the uniform data-access contract identically.
func FixtureRoutes() []models.Route {
	return []models.Route{
		{
			ID: 1, Origin: "New York City", Destination: "Boston Station",
			Operator: "GreyLine Express", BusType: "Express",
			DepartureTime: "08:00", ArrivalTime: "12:30", Duration: "4h 30m",
			Price: 45, AvailableSeats: 32,
			Amenities: []string{"Free WiFi", "Charging Ports", "Air Conditioning"},
		},
		{
			ID: 2, Origin: "Boston Station", Destination: "New York City",
			Operator: "GreyLine Express", BusType: "Express",
			DepartureTime: "14:00", ArrivalTime: "18:25", Duration: "4h 25m",
			Price: 45, AvailableSeats: 27,
			Amenities: []string{"Free WiFi", "Charging Ports", "Air Conditioning"},
		},
		{
			ID: 3, Origin: "New York City", Destination: "Washington DC",
			Operator: "Capital Coaches", BusType: "Luxury Coach",
			DepartureTime: "09:15", ArrivalTime: "13:45", Duration: "4h 30m",
			Price: 59, AvailableSeats: 21,
			Amenities: []string{"Free WiFi", "Reclining Seats", "Onboard Restroom", "Extra Legroom"},
		},
		{
			ID: 4, Origin: "Washington DC", Destination: "New York City",
			Operator: "Capital Coaches", BusType: "Luxury Coach",
			DepartureTime: "17:30", ArrivalTime: "21:55", Duration: "4h 25m",
			Price: 59, AvailableSeats: 18,
			Amenities: []string{"Free WiFi", "Reclining Seats", "Onboard Restroom"},
		},
		{
			ID: 5, Origin: "Chicago", Destination: "Detroit",
			Operator: "Lakeshore Lines", BusType: "Standard",
			DepartureTime: "06:30", ArrivalTime: "11:15", Duration: "4h 45m",
			Price: 38, AvailableSeats: 35,
			Amenities: []string{"Air Conditioning", "Charging Ports"},
		},
		{
			ID: 6, Origin: "Detroit", Destination: "Chicago",
			Operator: "Lakeshore Lines", BusType: "Standard",
			DepartureTime: "13:45", ArrivalTime: "18:30", Duration: "4h 45m",
			Price: 38, AvailableSeats: 30,
			Amenities: []string{"Air Conditioning"},
		},
		{
			ID: 7, Origin: "San Francisco", Destination: "Los Angeles",
			Operator: "Pacific Cruiser", BusType: "Premium",
			DepartureTime: "07:45", ArrivalTime: "14:30", Duration: "6h 45m",
			Price: 65, AvailableSeats: 24,
			Amenities: []string{"Free WiFi", "Reclining Seats", "Charging Ports", "Complimentary Snacks"},
		},
		{
			ID: 8, Origin: "Los Angeles", Destination: "San Francisco",
			Operator: "Pacific Cruiser", BusType: "Premium",
			DepartureTime: "22:30", ArrivalTime: "05:15", Duration: "6h 45m",
			Price: 65, AvailableSeats: 26,
			Amenities: []string{"Free WiFi", "Reclining Seats", "Charging Ports"},
		},
		{
			ID: 9, Origin: "Seattle", Destination: "Portland",
			Operator: "Cascade Connect", BusType: "Standard",
			DepartureTime: "11:20", ArrivalTime: "14:35", Duration: "3h 15m",
			Price: 29, AvailableSeats: 38,
			Amenities: []string{"Free WiFi", "Air Conditioning"},
		},
		{
			ID: 10, Origin: "Portland", Destination: "Seattle",
			Operator: "Cascade Connect", BusType: "Standard",
			DepartureTime: "16:40", ArrivalTime: "19:55", Duration: "3h 15m",
			Price: 29, AvailableSeats: 33,
			Amenities: []string{"Free WiFi", "Air Conditioning"},
		},
		{
			ID: 11, Origin: "Austin", Destination: "Houston",
			Operator: "Lone Star Express", BusType: "Express",
			DepartureTime: "05:30", ArrivalTime: "08:20", Duration: "2h 50m",
			Price: 25, AvailableSeats: 29,
			Amenities: []string{"Air Conditioning", "Charging Ports"},
		},
		{
			ID: 12, Origin: "Houston", Destination: "Austin",
			Operator: "Lone Star Express", BusType: "Express",
			DepartureTime: "19:00", ArrivalTime: "21:50", Duration: "2h 50m",
			Price: 25, AvailableSeats: 31,
			Amenities: []string{"Air Conditioning", "Charging Ports"},
		},
		{
			ID: 13, Origin: "Denver", Destination: "Salt Lake City",
			Operator: "Rockies Overnight", BusType: "AC Sleeper",
			DepartureTime: "21:00", ArrivalTime: "06:30", Duration: "9h 30m",
			Price: 79, AvailableSeats: 14,
			Amenities: []string{"Free WiFi", "Reclining Seats", "Onboard Restroom", "Extra Legroom"},
		},
		{
			ID: 14, Origin: "Miami", Destination: "Orlando",
			Operator: "Sunshine Shuttle", BusType: "Premium",
			DepartureTime: "10:10", ArrivalTime: "14:05", Duration: "3h 55m",
			Price: 42, AvailableSeats: 22,
			Amenities: []string{"Free WiFi", "Air Conditioning", "Charging Ports"},
		},
	}
}
