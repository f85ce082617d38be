package domain

import (
	"fmt"
	"time"
)

// BookingReference derives the human-presentable reference for a
// booking: RR-<4-digit year>-<sequence>. The sequence is the booking's
// monotonically increasing id zero-padded to at least three digits,
// which keeps references unique and deterministic for a given store.
func BookingReference(bookedAt time.Time, id int64) string {
	return fmt.Sprintf("RR-%04d-%03d", bookedAt.Year(), id)
}
