// Package metrics registers the process-wide Prometheus counters,
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RouteSearches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routerider",
		Name:      "route_searches_total",
		Help:      "Route search requests served.",
	})

	SeatReservations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routerider",
		Name:      "seat_reservations_total",
		Help:      "Seat reservation acknowledgements issued.",
	})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routerider",
		Name:      "bookings_created_total",
		Help:      "Bookings confirmed.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routerider",
		Name:      "bookings_cancelled_total",
		Help:      "Bookings flipped to cancelled.",
	})

	FlowSessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "routerider",
		Name:      "flow_sessions_started_total",
		Help:      "Booking flow sessions opened.",
	})
)
