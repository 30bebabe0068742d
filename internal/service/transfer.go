package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// TransferLine asks to move Quantity units out of one of the sender's lines.
type TransferLine struct {
	SourceTicketID uint
	Quantity       int
}

type TransferService struct {
	store Store
	clock clock.Clock
}

func NewTransferService(store Store, clk clock.Clock) *TransferService {
	return &TransferService{
		store: store,
		clock: clk,
	}
}

// Request records a pending transfer and notifies the recipient. Nothing
// moves until the recipient accepts.
func (s *TransferService) Request(ctx context.Context, senderID uint, recipientEmail string, eventID uint, lines []TransferLine) (domain.TransferRequest, error) {
	if len(lines) == 0 {
		return domain.TransferRequest{}, domain.ErrEmptySelection
	}

	var created domain.TransferRequest
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		senderIdx, err := requireAttendee(tx.Snapshot, senderID)
		if err != nil {
			return err
		}
		recipientIdx, ok := tx.FindUserByEmail(recipientEmail)
		if !ok || !tx.Users[recipientIdx].IsAttendee() || tx.Users[recipientIdx].ID == senderID {
			return domain.ErrRecipientInvalid
		}
		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}

		items := make([]domain.TransferItem, 0, len(lines))
		for _, l := range lines {
			item := domain.TransferItem{SourceTicketID: l.SourceTicketID, Quantity: l.Quantity}
			if i, ok := tx.FindTicket(l.SourceTicketID); ok {
				item.TicketType = tx.Tickets[i].TicketType
			}
			items = append(items, item)
		}
		if err := checkTransferable(tx.Snapshot, senderID, eventID, items); err != nil {
			return err
		}

		sender := tx.Users[senderIdx]
		recipient := tx.Users[recipientIdx]
		ev := tx.Events[evIdx]

		created = domain.TransferRequest{
			ID:          tx.NextID(repository.TransferRequests),
			SenderID:    senderID,
			RecipientID: recipient.ID,
			EventID:     eventID,
			Items:       items,
			Status:      domain.RequestPending,
			Timestamp:   domain.Timestamp{Time: s.clock.Now()},
		}
		tx.TransferRequests = append(tx.TransferRequests, created)
		tx.Touch(repository.TransferRequests)

		notify(tx, created.Timestamp.Time, recipient.ID,
			"Ticket transfer request",
			fmt.Sprintf("%s wants to transfer %d ticket(s) for %s to you.", sender.FullName(), created.TotalQuantity(), ev.Title),
			domain.PendingTransferPayload{
				RequestID:  created.ID,
				SenderID:   senderID,
				SenderName: sender.FullName(),
				EventID:    eventID,
				EventTitle: ev.Title,
				Items:      items,
			},
		)
		return nil
	})
	metrics.TrackOperation("transfer_request", err)
	if err != nil {
		return domain.TransferRequest{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("transfer requested",
		zap.Uint("request_id", created.ID),
		zap.Uint("sender_id", senderID),
		zap.Uint("recipient_id", created.RecipientID),
		zap.Int("quantity", created.TotalQuantity()),
	)
	return created, nil
}

// Respond lets the recipient accept or reject a pending transfer. When the
// tickets can no longer be moved the request is rejected, that rejection is
// committed, and the ticket error is returned.
func (s *TransferService) Respond(ctx context.Context, recipientID, requestID uint, accept bool) (domain.TransferRequest, error) {
	var (
		result  domain.TransferRequest
		moveErr error
	)
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		i, ok := tx.FindTransferRequest(requestID)
		if !ok {
			return domain.ErrRequestNotFound
		}
		req := &tx.TransferRequests[i]
		if req.RecipientID != recipientID {
			return domain.ErrOwnershipMismatch
		}
		if req.Status != domain.RequestPending {
			return domain.ErrRequestNotPending
		}

		now := s.clock.Now()
		title := "Unknown event"
		if ev, ok := tx.FindEvent(req.EventID); ok {
			title = tx.Events[ev].Title
		}

		status := domain.RequestRejected
		if accept {
			// Computed on the untouched state so a failure leaves no
			// partial ticket movement behind.
			moveErr = checkTransferable(tx.Snapshot, req.SenderID, req.EventID, req.Items)
			if moveErr == nil {
				if err := effectTransfer(tx, now, req.SenderID, req.RecipientID, req.EventID, req.Items); err != nil {
					return err
				}
				status = domain.RequestAccepted
			}
		}

		req.Status = status
		req.ResponseTimestamp = domain.Timestamp{Time: now}
		if moveErr != nil {
			req.FailureReason = moveErr.Error()
		}
		tx.Touch(repository.TransferRequests)

		outcome := domain.TransferOutcomePayload{
			RequestID: req.ID,
			EventID:   req.EventID,
			Status:    status,
			Reason:    req.FailureReason,
		}
		switch {
		case moveErr != nil:
			body := fmt.Sprintf("The transfer for %s could not be completed: %s.", title, describeError(moveErr))
			notify(tx, now, req.SenderID, "Ticket transfer failed", body, outcome)
			notify(tx, now, req.RecipientID, "Ticket transfer failed", body, outcome)
		case accept:
			notify(tx, now, req.SenderID, "Ticket transfer accepted",
				fmt.Sprintf("Your transfer of %d ticket(s) for %s was accepted.", req.TotalQuantity(), title), outcome)
		default:
			notify(tx, now, req.SenderID, "Ticket transfer rejected",
				fmt.Sprintf("Your transfer of %d ticket(s) for %s was rejected.", req.TotalQuantity(), title), outcome)
		}

		result = *req
		return nil
	})
	if err == nil {
		err = moveErr
	}
	metrics.TrackOperation("transfer_respond", err)
	if err != nil {
		if moveErr != nil && errors.Is(err, moveErr) {
			zap.L().Warn("transfer rejected after failed move",
				zap.Uint("request_id", requestID),
				zap.Error(moveErr),
			)
			return result, fmt.Errorf("effectTransfer -> %w", moveErr)
		}
		return domain.TransferRequest{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	if result.Status == domain.RequestAccepted {
		metrics.TrackTickets(metrics.MovementTransferred, result.TotalQuantity())
	}
	zap.L().Info("transfer answered",
		zap.Uint("request_id", requestID),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}

// ListTransfers returns the requests the user sent or received.
func (s *TransferService) ListTransfers(ctx context.Context, userID uint) ([]domain.TransferRequest, error) {
	var out []domain.TransferRequest
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		if _, ok := snap.FindUser(userID); !ok {
			return domain.ErrUserNotFound
		}
		out = []domain.TransferRequest{}
		for _, r := range snap.TransferRequests {
			if r.SenderID == userID || r.RecipientID == userID {
				out = append(out, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}

// describeError turns a core error into a short sentence fragment.
func describeError(err error) string {
	var e *domain.Error
	if errors.As(err, &e) {
		msg := splitCamel(string(e.Code))
		if e.Subject != "" {
			msg += " (" + e.Subject + ")"
		}
		return msg
	}
	return err.Error()
}

func splitCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
