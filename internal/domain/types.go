package domain

// SearchQuery carries the route-search request. Origin and Destination
// are matched as case-insensitive substrings; empty strings match all.
// Date is accepted for API symmetry but not used to narrow results:
// there is no per-date schedule model. Callers must not rely on it.
type SearchQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// Filters narrows a route listing. Categories combine conjunctively,
// and within Amenities every selected tag must be present on the route
// (deliberately stricter than the usual any-of semantics).
type Filters struct {
	Amenities []string `json:"amenities"`
	TimeSlots []string `json:"timeSlots"`
	BusTypes  []string `json:"busTypes"`
}

// Empty reports whether no filter category is active.
func (f Filters) Empty() bool {
	return len(f.Amenities) == 0 && len(f.TimeSlots) == 0 && len(f.BusTypes) == 0
}
