package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket is one holding line: an attendee's quantity of one ticket type
// for one event.
type Ticket struct {
	ID             uint            `json:"ticket_id"`
	EventID        uint            `json:"event_id"`
	UserID         uint            `json:"user_id"`
	TicketType     string          `json:"ticket_type"`
	QuantityBought int             `json:"quantity_bought"`
	Price          decimal.Decimal `json:"price"`
	PurchaseDate   Timestamp       `json:"purchase_date"`
	Status         TicketStatus    `json:"status"`
	QRCode         string          `json:"qr_code"`
}

func QRCodeFor(ticketID, eventID, userID uint) string {
	return fmt.Sprintf("TKT-%d-%d-%d", ticketID, eventID, userID)
}

// IsHolding reports whether the line still counts as issued inventory.
func (t Ticket) IsHolding() bool {
	return t.Status == TicketValid || t.Status == TicketUsed
}

// EffectiveStatus presents a valid line for a finished event as used.
// The used status is never written back.
func (t Ticket) EffectiveStatus(ev Event, now time.Time) TicketStatus {
	if t.Status == TicketValid && ev.IsOver(now) {
		return TicketUsed
	}
	return t.Status
}

// Total is the line's quantity at its purchase price.
func (t Ticket) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.QuantityBought)))
}
