// Package ledger holds the two quantity ledgers every ticket movement goes
// through. Both operate on a staged store transaction and never commit.
package ledger

import (
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// Reserve takes qty units of ticketType out of the event's remaining
// inventory.
func Reserve(tx *repository.Tx, eventID uint, ticketType string, qty int) error {
	remaining, err := Remaining(tx.Snapshot, eventID, ticketType)
	if err != nil {
		return err
	}
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}
	if qty > remaining {
		return domain.InsufficientInventory(ticketType)
	}
	ev, idx, err := locateType(tx, eventID, ticketType)
	if err != nil {
		return err
	}
	tx.Events[ev].TicketTypes[idx].TotalQuantity -= qty
	tx.Touch(repository.Events)
	return nil
}

// Release puts qty units back. It only fails for an unknown event or type.
func Release(tx *repository.Tx, eventID uint, ticketType string, qty int) error {
	ev, idx, err := locateType(tx, eventID, ticketType)
	if err != nil {
		return err
	}
	if qty < 1 {
		return nil
	}
	tx.Events[ev].TicketTypes[idx].TotalQuantity += qty
	tx.Touch(repository.Events)
	return nil
}

// Remaining reports the unsold quantity of ticketType.
func Remaining(snap *repository.Snapshot, eventID uint, ticketType string) (int, error) {
	ev, ok := snap.FindEvent(eventID)
	if !ok {
		return 0, domain.ErrEventNotFound
	}
	idx := snap.Events[ev].FindTicketType(ticketType)
	if idx < 0 {
		return 0, domain.UnknownTicketType(ticketType)
	}
	return snap.Events[ev].TicketTypes[idx].TotalQuantity, nil
}

func locateType(tx *repository.Tx, eventID uint, ticketType string) (int, int, error) {
	ev, ok := tx.FindEvent(eventID)
	if !ok {
		return 0, 0, domain.ErrEventNotFound
	}
	idx := tx.Events[ev].FindTicketType(ticketType)
	if idx < 0 {
		return 0, 0, domain.UnknownTicketType(ticketType)
	}
	return ev, idx, nil
}
