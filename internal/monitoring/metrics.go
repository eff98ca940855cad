package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created (pending payment)",
		},
	)

	settlementsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlements_confirmed_total",
			Help: "Bookings confirmed with inventory committed",
		},
	)

	verificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_verification_failures_total",
			Help: "Payment callbacks rejected on signature mismatch",
		},
	)

	inventoryConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_conflicts_total",
			Help: "Settlements aborted because a ticket type sold out",
		},
	)

	staleCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stale_bookings_cancelled_total",
			Help: "Created bookings cancelled by the reconciliation sweep",
		},
	)

	settlementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "settlement_duration_seconds",
			Help:    "Duration of the atomic confirm transaction",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)
)

func BookingCreated()      { bookingsCreated.Inc() }
func SettlementConfirmed() { settlementsConfirmed.Inc() }
func VerificationFailed()  { verificationFailures.Inc() }
func InventoryConflict()   { inventoryConflicts.Inc() }

func StaleCancelled(n int) { staleCancelled.Add(float64(n)) }

func ObserveSettlement(d time.Duration) { settlementDuration.Observe(d.Seconds()) }
