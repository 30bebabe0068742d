package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vietanh2810/eventhub/internal/domain"
)

var (
	operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_operations_total",
			Help: "Core operations by name and outcome code",
		},
		[]string{"operation", "outcome"},
	)

	ticketQuantity = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventhub_ticket_quantity_total",
			Help: "Ticket quantity moved by purchases, refunds and transfers",
		},
		[]string{"movement"},
	)

	commitDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventhub_store_commit_duration_seconds",
			Help:    "Duration of store commits",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"outcome"},
	)
)

const (
	MovementSold        = "sold"
	MovementRefunded    = "refunded"
	MovementTransferred = "transferred"
)

// TrackOperation counts one core operation. The outcome is "ok" or the
// domain error code.
func TrackOperation(operation string, err error) {
	operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func TrackTickets(movement string, quantity int) {
	if quantity <= 0 {
		return
	}
	ticketQuantity.WithLabelValues(movement).Add(float64(quantity))
}

func TrackCommit(d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	commitDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code := domain.CodeOf(err); code != "" {
		return string(code)
	}
	return "internal"
}
