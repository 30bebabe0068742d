package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository/dao"
)

type SnapshotDAO interface {
	FindUsers(ctx context.Context) ([]dao.User, error)
	FindEvents(ctx context.Context) ([]dao.Event, error)
	FindServices(ctx context.Context) ([]dao.Service, error)
	FindTickets(ctx context.Context) ([]dao.Ticket, error)
	FindCollaborationRequests(ctx context.Context) ([]dao.CollaborationRequest, error)
	FindTransferRequests(ctx context.Context) ([]dao.TransferRequest, error)
	FindReviews(ctx context.Context) ([]dao.Review, error)
	FindNotifications(ctx context.Context) ([]dao.Notification, error)
	Replace(ctx context.Context, tables []dao.Table) error
}

// PostgresPersister keeps each collection in its own table. A commit
// replaces the touched tables inside one database transaction.
type PostgresPersister struct {
	dao SnapshotDAO
}

func NewPostgresPersister(dao SnapshotDAO) *PostgresPersister {
	return &PostgresPersister{
		dao: dao,
	}
}

func (p *PostgresPersister) Load(ctx context.Context, strict bool) (*Snapshot, error) {
	snap := NewSnapshot()

	users, err := p.dao.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindUsers -> %w", err)
	}
	for _, u := range users {
		snap.Users = append(snap.Users, userDaoToDomain(u))
	}

	events, err := p.dao.FindEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindEvents -> %w", err)
	}
	for _, e := range events {
		snap.Events = append(snap.Events, eventDaoToDomain(e))
	}

	services, err := p.dao.FindServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindServices -> %w", err)
	}
	for _, s := range services {
		snap.Services = append(snap.Services, serviceDaoToDomain(s))
	}

	tickets, err := p.dao.FindTickets(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindTickets -> %w", err)
	}
	for _, t := range tickets {
		snap.Tickets = append(snap.Tickets, ticketDaoToDomain(t))
	}

	collabs, err := p.dao.FindCollaborationRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindCollaborationRequests -> %w", err)
	}
	for _, r := range collabs {
		snap.CollaborationRequests = append(snap.CollaborationRequests, collaborationDaoToDomain(r))
	}

	transfers, err := p.dao.FindTransferRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindTransferRequests -> %w", err)
	}
	for _, r := range transfers {
		snap.TransferRequests = append(snap.TransferRequests, transferDaoToDomain(r))
	}

	reviews, err := p.dao.FindReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindReviews -> %w", err)
	}
	for _, r := range reviews {
		snap.Reviews = append(snap.Reviews, reviewDaoToDomain(r))
	}

	notifications, err := p.dao.FindNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("p.dao.FindNotifications -> %w", err)
	}
	for _, n := range notifications {
		converted, err := notificationDaoToDomain(n)
		if err != nil {
			if strict {
				return nil, fmt.Errorf("notificationDaoToDomain -> %w", err)
			}
			zap.L().Warn("dropping unreadable notification", zap.Uint("notification_id", n.ID), zap.Error(err))
			continue
		}
		snap.Notifications = append(snap.Notifications, converted)
	}

	return snap, nil
}

func (p *PostgresPersister) Persist(ctx context.Context, s *Snapshot, touched []Collection) error {
	tables := make([]dao.Table, 0, len(touched))
	for _, c := range touched {
		t, err := tableFor(s, c)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	if err := p.dao.Replace(ctx, tables); err != nil {
		if errors.Is(err, dao.ErrUserEmailExists) {
			return fmt.Errorf("p.dao.Replace -> %w", domain.ErrEmailTaken)
		}
		return fmt.Errorf("p.dao.Replace -> %w", err)
	}

	return nil
}

func tableFor(s *Snapshot, c Collection) (dao.Table, error) {
	switch c {
	case Users:
		rows := make([]dao.User, 0, len(s.Users))
		for _, u := range s.Users {
			rows = append(rows, userDomainToDao(u))
		}
		return dao.Table{Model: &dao.User{}, Rows: &rows, Len: len(rows)}, nil
	case Events:
		rows := make([]dao.Event, 0, len(s.Events))
		for _, e := range s.Events {
			rows = append(rows, eventDomainToDao(e))
		}
		return dao.Table{Model: &dao.Event{}, Children: []any{&dao.TicketType{}}, Rows: &rows, Len: len(rows)}, nil
	case Services:
		rows := make([]dao.Service, 0, len(s.Services))
		for _, sv := range s.Services {
			rows = append(rows, serviceDomainToDao(sv))
		}
		return dao.Table{Model: &dao.Service{}, Rows: &rows, Len: len(rows)}, nil
	case Tickets:
		rows := make([]dao.Ticket, 0, len(s.Tickets))
		for _, t := range s.Tickets {
			rows = append(rows, ticketDomainToDao(t))
		}
		return dao.Table{Model: &dao.Ticket{}, Rows: &rows, Len: len(rows)}, nil
	case CollaborationRequests:
		rows := make([]dao.CollaborationRequest, 0, len(s.CollaborationRequests))
		for _, r := range s.CollaborationRequests {
			rows = append(rows, collaborationDomainToDao(r))
		}
		return dao.Table{Model: &dao.CollaborationRequest{}, Rows: &rows, Len: len(rows)}, nil
	case TransferRequests:
		rows := make([]dao.TransferRequest, 0, len(s.TransferRequests))
		for _, r := range s.TransferRequests {
			rows = append(rows, transferDomainToDao(r))
		}
		return dao.Table{Model: &dao.TransferRequest{}, Children: []any{&dao.TransferItem{}}, Rows: &rows, Len: len(rows)}, nil
	case Reviews:
		rows := make([]dao.Review, 0, len(s.Reviews))
		for _, r := range s.Reviews {
			rows = append(rows, reviewDomainToDao(r))
		}
		return dao.Table{Model: &dao.Review{}, Rows: &rows, Len: len(rows)}, nil
	case Notifications:
		rows := make([]dao.Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			converted, err := notificationDomainToDao(n)
			if err != nil {
				return dao.Table{}, fmt.Errorf("notificationDomainToDao -> %w", err)
			}
			rows = append(rows, converted)
		}
		return dao.Table{Model: &dao.Notification{}, Rows: &rows, Len: len(rows)}, nil
	}
	return dao.Table{}, fmt.Errorf("unknown collection %q", c)
}
