package domain

import (
	"strconv"
	"strings"

	"routerider/internal/domain/models"
)

// Time-of-day buckets for the timeSlots filter.
const (
	SlotMorning   = "morning"   // [06:00, 12:00)
	SlotAfternoon = "afternoon" // [12:00, 18:00)
	SlotEvening   = "evening"   // [18:00, 24:00)
	SlotNight     = "night"     // [00:00, 06:00)
)

// amenityKeywords maps a filter tag to the substring that identifies it
// inside a route's free-text amenity strings. An amenity string that
// matches none of these is dropped from consideration entirely.
var amenityKeywords = []struct {
	tag     string
	keyword string
}{
	{"wifi", "wifi"},
	{"charging", "charging"},
	{"ac", "air conditioning"},
	{"restroom", "restroom"},
	{"reclining", "reclining"},
	{"legroom", "legroom"},
}

var busTypeBuckets = []string{"standard", "premium", "luxury", "express", "sleeper"}

// AmenityTags derives the set of known tags present in a route's
// amenity list, case-insensitively.
func AmenityTags(amenities []string) map[string]bool {
	tags := make(map[string]bool)
	for _, a := range amenities {
		lower := strings.ToLower(a)
		for _, kw := range amenityKeywords {
			if strings.Contains(lower, kw.keyword) {
				tags[kw.tag] = true
				break
			}
		}
	}
	return tags
}

// TimeSlot buckets an HH:MM departure time by hour.
func TimeSlot(departureTime string) string {
	hour := departureHour(departureTime)
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18:
		return SlotEvening
	default:
		return SlotNight
	}
}

func departureHour(departureTime string) int {
	head, _, _ := strings.Cut(departureTime, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0
	}
	return hour
}

// BusTypeBucket maps a free-form bus type onto one of the five known
// buckets by substring match, or "" when none applies. An unbucketable
// bus type fails any non-empty busTypes filter.
func BusTypeBucket(busType string) string {
	lower := strings.ToLower(busType)
	for _, b := range busTypeBuckets {
		if strings.Contains(lower, b) {
			return b
		}
	}
	return ""
}

// MatchesFilters applies all three filter categories conjunctively.
// Within amenities, every selected tag must be present on the route:
// this is an intentional all-of rule, not any-of. Keep it unless the
// product decision changes.
func MatchesFilters(route models.Route, filters Filters) bool {
	if len(filters.Amenities) > 0 {
		tags := AmenityTags(route.Amenities)
		for _, want := range filters.Amenities {
			if !tags[want] {
				return false
			}
		}
	}

	if len(filters.TimeSlots) > 0 {
		if !containsString(filters.TimeSlots, TimeSlot(route.DepartureTime)) {
			return false
		}
	}

	if len(filters.BusTypes) > 0 {
		bucket := BusTypeBucket(route.BusType)
		if bucket == "" || !containsString(filters.BusTypes, bucket) {
			return false
		}
	}

	return true
}

// ApplyFilters keeps the routes passing MatchesFilters, preserving
// input order.
func ApplyFilters(routes []models.Route, filters Filters) []models.Route {
	if filters.Empty() {
		return routes
	}
	out := make([]models.Route, 0, len(routes))
	for _, r := range routes {
		if MatchesFilters(r, filters) {
			out = append(out, r)
		}
	}
	return out
}

// MatchesSearch implements the catalog match rule: case-insensitive
// substring containment on both origin and destination, with empty
// query strings matching everything.
func MatchesSearch(route models.Route, origin, destination string) bool {
	o := strings.ToLower(strings.TrimSpace(origin))
	d := strings.ToLower(strings.TrimSpace(destination))
	if o != "" && !strings.Contains(strings.ToLower(route.Origin), o) {
		return false
	}
	if d != "" && !strings.Contains(strings.ToLower(route.Destination), d) {
		return false
	}
	return true
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
