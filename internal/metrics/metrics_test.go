package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/eventhub/internal/domain"
)

func TestTrackOperation(t *testing.T) {
	before := testutil.ToFloat64(operations.WithLabelValues("purchase", "SaleWindowClosed"))

	TrackOperation("purchase", domain.ErrSaleWindowClosed)

	after := testutil.ToFloat64(operations.WithLabelValues("purchase", "SaleWindowClosed"))
	assert.Equal(t, before+1, after)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "InsufficientInventory", Outcome(domain.InsufficientInventory("VIP")))
	assert.Equal(t, "internal", Outcome(errors.New("boom")))
}

func TestTrackTickets_IgnoresNonPositive(t *testing.T) {
	before := testutil.ToFloat64(ticketQuantity.WithLabelValues(MovementRefunded))

	TrackTickets(MovementRefunded, 0)
	TrackTickets(MovementRefunded, 3)

	assert.Equal(t, before+3, testutil.ToFloat64(ticketQuantity.WithLabelValues(MovementRefunded)))
}
