package domain

import (
	"testing"

	"routerider/internal/domain/models"
)

func route(busType, departure string, amenities ...string) models.Route {
	return models.Route{
		ID:            1,
		Origin:        "New York City",
		Destination:   "Boston Station",
		BusType:       busType,
		DepartureTime: departure,
		Amenities:     amenities,
	}
}

func TestAmenityTagsKeywordDerivation(t *testing.T) {
	tags := AmenityTags([]string{
		"Free WiFi",
		"USB Charging Ports",
		"Air Conditioning",
		"Onboard Restroom",
		"Reclining Seats",
		"Extra Legroom",
		"Complimentary Snacks", // matches no keyword, dropped
	})
	for _, want := range []string{"wifi", "charging", "ac", "restroom", "reclining", "legroom"} {
		if !tags[want] {
			t.Fatalf("missing tag %q in %v", want, tags)
		}
	}
	if len(tags) != 6 {
		t.Fatalf("unexpected extra tags: %v", tags)
	}
}

func TestAmenityFilterRequiresAll(t *testing.T) {
	r := route("Express", "08:00", "Free WiFi", "Air Conditioning")

	if !MatchesFilters(r, Filters{Amenities: []string{"wifi", "ac"}}) {
		t.Fatal("route with both amenities should pass")
	}
	// all selected amenities must be present, not any
	if MatchesFilters(r, Filters{Amenities: []string{"wifi", "restroom"}}) {
		t.Fatal("route missing one selected amenity must fail")
	}
}

func TestTimeSlotBuckets(t *testing.T) {
	cases := map[string]string{
		"06:00": SlotMorning,
		"11:59": SlotMorning,
		"12:00": SlotAfternoon,
		"17:30": SlotAfternoon,
		"18:00": SlotEvening,
		"23:45": SlotEvening,
		"00:30": SlotNight,
		"05:59": SlotNight,
	}
	for departure, want := range cases {
		if got := TimeSlot(departure); got != want {
			t.Fatalf("TimeSlot(%s) = %s, want %s", departure, got, want)
		}
	}
}

func TestBusTypeBucketSubstring(t *testing.T) {
	cases := map[string]string{
		"Standard":      "standard",
		"Premium Coach": "premium",
		"Luxury Coach":  "luxury",
		"Night Express": "express",
		"AC Sleeper":    "sleeper",
		"Minibus":       "",
	}
	for busType, want := range cases {
		if got := BusTypeBucket(busType); got != want {
			t.Fatalf("BusTypeBucket(%s) = %q, want %q", busType, got, want)
		}
	}
}

func TestUnbucketableBusTypeFailsFilter(t *testing.T) {
	r := route("Minibus", "09:00")
	if MatchesFilters(r, Filters{BusTypes: []string{"standard", "premium", "luxury", "express", "sleeper"}}) {
		t.Fatal("unbucketable bus type must fail any non-empty busTypes filter")
	}
	if !MatchesFilters(r, Filters{}) {
		t.Fatal("empty filters must pass everything")
	}
}

func TestFiltersAreConjunctiveAcrossCategories(t *testing.T) {
	r := route("Luxury Coach", "20:15", "Free WiFi")

	pass := Filters{Amenities: []string{"wifi"}, TimeSlots: []string{SlotEvening}, BusTypes: []string{"luxury"}}
	if !MatchesFilters(r, pass) {
		t.Fatal("route matching every category should pass")
	}

	fail := pass
	fail.TimeSlots = []string{SlotMorning}
	if MatchesFilters(r, fail) {
		t.Fatal("one failing category must reject the route")
	}
}

func TestMatchesSearchSubstringCaseInsensitive(t *testing.T) {
	r := route("Express", "08:00")

	if !MatchesSearch(r, "new york", "boston") {
		t.Fatal("case-insensitive substring should match")
	}
	if !MatchesSearch(r, "", "") {
		t.Fatal("empty query matches all")
	}
	if MatchesSearch(r, "chicago", "boston") {
		t.Fatal("non-contained origin must not match")
	}
}

func TestApplyFiltersPreservesOrder(t *testing.T) {
	routes := []models.Route{
		{ID: 1, BusType: "Standard", DepartureTime: "07:00"},
		{ID: 2, BusType: "Premium", DepartureTime: "08:00"},
		{ID: 3, BusType: "Standard", DepartureTime: "09:00"},
	}
	got := ApplyFilters(routes, Filters{BusTypes: []string{"standard"}})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected result %+v", got)
	}
}
