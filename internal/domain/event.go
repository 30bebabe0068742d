package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketType is embedded in an Event. TotalQuantity is the remaining
// inventory, not the configured capacity.
type TicketType struct {
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	TotalQuantity int             `json:"total_quantity"`
}

type Event struct {
	ID                   uint         `json:"event_id"`
	OrganizerID          uint         `json:"organizer_id"`
	Title                string       `json:"title"`
	StartDate            Date         `json:"start_date"`
	EndDate              Date         `json:"end_date"`
	StartTime            string       `json:"start_time"`
	Location             string       `json:"location"`
	Type                 string       `json:"type"`
	Description          string       `json:"description"`
	ImageRef             string       `json:"image_ref"`
	TicketTypes          []TicketType `json:"ticket_types"`
	TicketSaleDeadline   DateTime     `json:"ticket_sale_deadline"`
	TicketCancelDeadline DateTime     `json:"ticket_cancel_deadline"`
}

// FindTicketType returns the index of the named type or -1.
func (e Event) FindTicketType(name string) int {
	for i, tt := range e.TicketTypes {
		if tt.Type == name {
			return i
		}
	}
	return -1
}

// StartsAt combines StartDate and StartTime. A missing or malformed
// StartTime means midnight.
func (e Event) StartsAt() time.Time {
	start := e.StartDate.Time
	if e.StartTime == "" {
		return start
	}
	clock, err := time.ParseInLocation(TimeLayout, e.StartTime, start.Location())
	if err != nil {
		return start
	}
	return start.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
}

// HasStarted reports whether the calendar day of now is on or after StartDate.
func (e Event) HasStarted(now time.Time) bool {
	return !StartOfDay(now).Before(e.StartDate.Time)
}

// IsOver reports whether the calendar day of now is strictly after EndDate.
func (e Event) IsOver(now time.Time) bool {
	return StartOfDay(now).After(e.EndDate.Time)
}
