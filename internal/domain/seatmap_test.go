package domain

import (
	"testing"

	"routerider/internal/domain/models"
)

func TestGenerateSeatMapShape(t *testing.T) {
	seats := GenerateSeatMap(7)
	if len(seats) != SeatCount {
		t.Fatalf("expected %d seats, got %d", SeatCount, len(seats))
	}

	occupied := map[int]bool{2: true, 7: true, 12: true, 18: true, 27: true, 38: true}
	for i, s := range seats {
		wantID := i + 1
		if s.ID != wantID {
			t.Fatalf("seat %d has id %d", i, s.ID)
		}
		if s.RouteID != 7 {
			t.Fatalf("seat %d has route id %d", s.ID, s.RouteID)
		}
		if s.Price != FlatSeatPrice {
			t.Fatalf("seat %d has price %v", s.ID, s.Price)
		}
		wantStatus := models.SeatAvailable
		if occupied[s.ID] {
			wantStatus = models.SeatOccupied
		}
		if s.Status != wantStatus {
			t.Fatalf("seat %d status %q, want %q", s.ID, s.Status, wantStatus)
		}
	}
}

func TestGenerateSeatMapLabelsAndTypes(t *testing.T) {
	seats := GenerateSeatMap(1)
	byNumber := SeatNumberSet(seats)

	cases := []struct {
		number   string
		id       int
		seatType string
		row, col int
	}{
		{"1A", 1, models.SeatTypeWindow, 1, 1},
		{"1B", 2, models.SeatTypeAisle, 1, 2},
		{"3B", 10, models.SeatTypeAisle, 3, 2},
		{"5C", 19, models.SeatTypeAisle, 5, 3},
		{"10D", 40, models.SeatTypeWindow, 10, 4},
	}
	for _, c := range cases {
		s, ok := byNumber[c.number]
		if !ok {
			t.Fatalf("seat %s missing", c.number)
		}
		if s.ID != c.id || s.Type != c.seatType || s.Row != c.row || s.Column != c.col {
			t.Fatalf("seat %s = %+v, want id=%d type=%s row=%d col=%d",
				c.number, s, c.id, c.seatType, c.row, c.col)
		}
	}
}

func TestGenerateSeatMapDeterministic(t *testing.T) {
	a := GenerateSeatMap(3)
	b := GenerateSeatMap(3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seat %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}
