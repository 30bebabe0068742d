package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/ledger"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// PaymentMode says how a purchase total is settled.
type PaymentMode string

const (
	// PayExternal leaves the whole total to an outside payment.
	PayExternal PaymentMode = "external"
	// PayCreditFirst uses as much credit as the attendee has and leaves
	// the rest to an outside payment.
	PayCreditFirst PaymentMode = "credit_first"
	// PayCreditOnly requires credit to cover the whole total.
	PayCreditOnly PaymentMode = "credit_only"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PayExternal, PayCreditFirst, PayCreditOnly:
		return true
	}
	return false
}

// RefundMode says where refunded money goes.
type RefundMode string

const (
	RefundExternal RefundMode = "refund"
	RefundToCredit RefundMode = "credit"
)

func (m RefundMode) Valid() bool {
	return m == RefundExternal || m == RefundToCredit
}

type TicketQuantity struct {
	TicketType string
	Quantity   int
}

type PurchaseReceipt struct {
	Tickets           []domain.Ticket
	Total             decimal.Decimal
	CreditUsed        decimal.Decimal
	ExternallySettled decimal.Decimal
}

type RefundReceipt struct {
	Tickets []domain.Ticket
	Total   decimal.Decimal
	Mode    RefundMode
}

type TicketService struct {
	store Store
	clock clock.Clock
}

func NewTicketService(store Store, clk clock.Clock) *TicketService {
	return &TicketService{
		store: store,
		clock: clk,
	}
}

// saleClosesAt falls back to the event start when no deadline was recorded.
func saleClosesAt(ev domain.Event) time.Time {
	if ev.TicketSaleDeadline.IsZero() {
		return ev.StartsAt()
	}
	return ev.TicketSaleDeadline.Time
}

func cancelClosesAt(ev domain.Event) time.Time {
	if ev.TicketCancelDeadline.IsZero() {
		return ev.StartsAt()
	}
	return ev.TicketCancelDeadline.Time
}

func requireAttendee(snap *repository.Snapshot, userID uint) (int, error) {
	i, ok := snap.FindUser(userID)
	if !ok {
		return -1, domain.ErrUserNotFound
	}
	if !snap.Users[i].IsAttendee() {
		return -1, domain.ErrIllegalUser
	}
	return i, nil
}

func (s *TicketService) Purchase(ctx context.Context, attendeeID, eventID uint, cart []TicketQuantity, mode PaymentMode) (PurchaseReceipt, error) {
	if !mode.Valid() {
		return PurchaseReceipt{}, domain.InvalidInput(fmt.Errorf("unknown payment mode %q", mode))
	}
	if len(cart) == 0 {
		return PurchaseReceipt{}, domain.ErrEmptySelection
	}

	var receipt PurchaseReceipt
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		now := s.clock.Now()

		userIdx, err := requireAttendee(tx.Snapshot, attendeeID)
		if err != nil {
			return err
		}
		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if !now.Before(saleClosesAt(ev)) {
			return domain.ErrSaleWindowClosed
		}

		total := decimal.Zero
		prices := make([]decimal.Decimal, len(cart))
		for i, line := range cart {
			if line.Quantity < 1 {
				return domain.ErrInvalidQuantity
			}
			idx := ev.FindTicketType(line.TicketType)
			if idx < 0 {
				return domain.UnknownTicketType(line.TicketType)
			}
			prices[i] = ev.TicketTypes[idx].Price
			total = total.Add(prices[i].Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		for _, line := range cart {
			if err := ledger.Reserve(tx, eventID, line.TicketType, line.Quantity); err != nil {
				return err
			}
		}

		creditUsed := decimal.Zero
		switch mode {
		case PayCreditFirst:
			creditUsed = decimal.Min(tx.Users[userIdx].Credit, total)
		case PayCreditOnly:
			creditUsed = total
		}
		if err := ledger.Debit(tx, attendeeID, creditUsed); err != nil {
			return err
		}

		affected := map[uint]struct{}{}
		for i, line := range cart {
			if t, ok := tx.FindValidLine(attendeeID, eventID, line.TicketType); ok {
				tx.Tickets[t].QuantityBought += line.Quantity
				affected[tx.Tickets[t].ID] = struct{}{}
				continue
			}
			id := tx.NextID(repository.Tickets)
			tx.Tickets = append(tx.Tickets, domain.Ticket{
				ID:             id,
				EventID:        eventID,
				UserID:         attendeeID,
				TicketType:     line.TicketType,
				QuantityBought: line.Quantity,
				Price:          prices[i],
				PurchaseDate:   domain.Timestamp{Time: now},
				Status:         domain.TicketValid,
				QRCode:         domain.QRCodeFor(id, eventID, attendeeID),
			})
			affected[id] = struct{}{}
		}
		tx.Touch(repository.Tickets)

		receipt = PurchaseReceipt{
			Tickets:           collectTickets(tx.Snapshot, affected),
			Total:             total,
			CreditUsed:        creditUsed,
			ExternallySettled: total.Sub(creditUsed),
		}
		return nil
	})
	metrics.TrackOperation("purchase", err)
	if err != nil {
		return PurchaseReceipt{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	metrics.TrackTickets(metrics.MovementSold, cartQuantity(cart))
	zap.L().Info("tickets purchased",
		zap.Uint("user_id", attendeeID),
		zap.Uint("event_id", eventID),
		zap.String("total", receipt.Total.StringFixed(2)),
		zap.String("credit_used", receipt.CreditUsed.StringFixed(2)),
	)
	return receipt, nil
}

func (s *TicketService) Refund(ctx context.Context, attendeeID, eventID uint, selections []TicketQuantity, mode RefundMode) (RefundReceipt, error) {
	if !mode.Valid() {
		return RefundReceipt{}, domain.InvalidInput(fmt.Errorf("unknown refund mode %q", mode))
	}
	if len(selections) == 0 {
		return RefundReceipt{}, domain.ErrEmptySelection
	}

	var receipt RefundReceipt
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		now := s.clock.Now()

		if _, err := requireAttendee(tx.Snapshot, attendeeID); err != nil {
			return err
		}
		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if now.After(cancelClosesAt(ev)) {
			return domain.ErrCancelWindowClosed
		}

		total := decimal.Zero
		affected := map[uint]struct{}{}
		for _, sel := range selections {
			if sel.Quantity < 1 {
				return domain.ErrInvalidQuantity
			}
			if ev.FindTicketType(sel.TicketType) < 0 {
				return domain.UnknownTicketType(sel.TicketType)
			}

			lines := validLines(tx.Snapshot, attendeeID, eventID, sel.TicketType)
			owned := 0
			for _, i := range lines {
				owned += tx.Tickets[i].QuantityBought
			}
			if owned < sel.Quantity {
				return domain.InsufficientOwnership(sel.TicketType)
			}

			left := sel.Quantity
			for _, i := range lines {
				if left == 0 {
					break
				}
				line := &tx.Tickets[i]
				take := min(left, line.QuantityBought)
				refunded := *line
				refunded.QuantityBought = take
				total = total.Add(refunded.Total())
				if take == line.QuantityBought {
					line.Status = domain.TicketCancelled
				} else {
					line.QuantityBought -= take
				}
				left -= take
				affected[line.ID] = struct{}{}
			}

			if err := ledger.Release(tx, eventID, sel.TicketType, sel.Quantity); err != nil {
				return err
			}
		}
		tx.Touch(repository.Tickets)

		if mode == RefundToCredit {
			if err := ledger.Credit(tx, attendeeID, total); err != nil {
				return err
			}
		}

		receipt = RefundReceipt{
			Tickets: collectTickets(tx.Snapshot, affected),
			Total:   total,
			Mode:    mode,
		}
		return nil
	})
	metrics.TrackOperation("refund", err)
	if err != nil {
		return RefundReceipt{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	metrics.TrackTickets(metrics.MovementRefunded, cartQuantity(selections))
	zap.L().Info("tickets refunded",
		zap.Uint("user_id", attendeeID),
		zap.Uint("event_id", eventID),
		zap.String("mode", string(mode)),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	return receipt, nil
}

// ListTickets returns every line the user holds or held, with status as
// presented: a valid line for a finished event reads as used.
func (s *TicketService) ListTickets(ctx context.Context, userID uint) ([]domain.Ticket, error) {
	var out []domain.Ticket
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		if _, ok := snap.FindUser(userID); !ok {
			return domain.ErrUserNotFound
		}
		now := s.clock.Now()
		out = []domain.Ticket{}
		for _, t := range snap.Tickets {
			if t.UserID != userID {
				continue
			}
			if ev, ok := snap.FindEvent(t.EventID); ok {
				t.Status = t.EffectiveStatus(snap.Events[ev], now)
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}

// TicketQRCode renders the line's QR string as a PNG.
func (s *TicketService) TicketQRCode(ctx context.Context, userID, ticketID uint, size int) ([]byte, error) {
	var code string
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		i, ok := snap.FindTicket(ticketID)
		if !ok {
			return domain.ErrTicketNotFound
		}
		if snap.Tickets[i].UserID != userID {
			return domain.ErrOwnershipMismatch
		}
		code = snap.Tickets[i].QRCode
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode.Encode -> %w", err)
	}

	return png, nil
}

// checkTransferable verifies, without mutating anything, that sender still
// holds every item of a transfer.
func checkTransferable(snap *repository.Snapshot, senderID, eventID uint, items []domain.TransferItem) error {
	if len(items) == 0 {
		return domain.ErrEmptySelection
	}

	wanted := map[uint]int{}
	for _, it := range items {
		if it.Quantity < 1 {
			return domain.ErrInvalidQuantity
		}
		wanted[it.SourceTicketID] += it.Quantity
	}

	for _, it := range items {
		i, ok := snap.FindTicket(it.SourceTicketID)
		if !ok {
			return domain.ErrTicketNotFound
		}
		t := snap.Tickets[i]
		if t.UserID != senderID || t.EventID != eventID {
			return domain.ErrOwnershipMismatch
		}
		if t.Status != domain.TicketValid || t.QuantityBought < wanted[t.ID] {
			return domain.InsufficientOwnership(t.TicketType)
		}
	}
	return nil
}

// effectTransfer moves the items from sender to recipient inside tx.
func effectTransfer(tx *repository.Tx, now time.Time, senderID, recipientID, eventID uint, items []domain.TransferItem) error {
	if err := checkTransferable(tx.Snapshot, senderID, eventID, items); err != nil {
		return err
	}

	for _, it := range items {
		src, _ := tx.FindTicket(it.SourceTicketID)
		source := tx.Tickets[src]
		full := it.Quantity == source.QuantityBought

		if dst, ok := tx.FindValidLine(recipientID, eventID, source.TicketType); ok {
			tx.Tickets[dst].QuantityBought += it.Quantity
			if full {
				tx.Tickets[src].Status = domain.TicketCancelled
			} else {
				tx.Tickets[src].QuantityBought -= it.Quantity
			}
			continue
		}

		if full {
			tx.Tickets[src].UserID = recipientID
			continue
		}

		tx.Tickets[src].QuantityBought -= it.Quantity
		id := tx.NextID(repository.Tickets)
		purchased := source.PurchaseDate
		if purchased.IsZero() {
			purchased = domain.Timestamp{Time: now}
		}
		tx.Tickets = append(tx.Tickets, domain.Ticket{
			ID:             id,
			EventID:        eventID,
			UserID:         recipientID,
			TicketType:     source.TicketType,
			QuantityBought: it.Quantity,
			Price:          source.Price,
			PurchaseDate:   purchased,
			Status:         domain.TicketValid,
			QRCode:         domain.QRCodeFor(id, eventID, recipientID),
		})
	}
	tx.Touch(repository.Tickets)
	return nil
}

// validLines lists the indexes of a user's valid lines for (event, type)
// by ascending ticket id.
func validLines(snap *repository.Snapshot, userID, eventID uint, ticketType string) []int {
	var out []int
	for i, t := range snap.Tickets {
		if t.UserID == userID && t.EventID == eventID && t.TicketType == ticketType && t.Status == domain.TicketValid {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return snap.Tickets[out[a]].ID < snap.Tickets[out[b]].ID
	})
	return out
}

func collectTickets(snap *repository.Snapshot, ids map[uint]struct{}) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(ids))
	for _, t := range snap.Tickets {
		if _, ok := ids[t.ID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

func cartQuantity(lines []TicketQuantity) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
