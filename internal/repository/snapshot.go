package repository

import (
	"github.com/vietanh2810/eventhub/internal/domain"
)

type Collection string

const (
	Users                 Collection = "users"
	Events                Collection = "events"
	Services              Collection = "services"
	Tickets               Collection = "tickets"
	CollaborationRequests Collection = "collaboration_requests"
	TransferRequests      Collection = "transfer_requests"
	Reviews               Collection = "reviews"
	Notifications         Collection = "notifications"
)

// AllCollections is also the order in which collections are persisted.
var AllCollections = []Collection{
	Users,
	Events,
	Services,
	Tickets,
	CollaborationRequests,
	TransferRequests,
	Reviews,
	Notifications,
}

// Snapshot is the whole store state. Every cross reference is by id.
type Snapshot struct {
	Users                 []domain.User
	Events                []domain.Event
	Services              []domain.Service
	Tickets               []domain.Ticket
	CollaborationRequests []domain.CollaborationRequest
	TransferRequests      []domain.TransferRequest
	Reviews               []domain.Review
	Notifications         []domain.Notification
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:                 []domain.User{},
		Events:                []domain.Event{},
		Services:              []domain.Service{},
		Tickets:               []domain.Ticket{},
		CollaborationRequests: []domain.CollaborationRequest{},
		TransferRequests:      []domain.TransferRequest{},
		Reviews:               []domain.Review{},
		Notifications:         []domain.Notification{},
	}
}

// Clone returns a deep copy. Notification payloads are treated as
// immutable values and shared.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Users:                 cloneSlice(s.Users),
		Events:                cloneSlice(s.Events),
		Services:              cloneSlice(s.Services),
		Tickets:               cloneSlice(s.Tickets),
		CollaborationRequests: cloneSlice(s.CollaborationRequests),
		TransferRequests:      cloneSlice(s.TransferRequests),
		Reviews:               cloneSlice(s.Reviews),
		Notifications:         cloneSlice(s.Notifications),
	}
	for i := range c.Events {
		c.Events[i].TicketTypes = cloneSlice(c.Events[i].TicketTypes)
	}
	for i := range c.Services {
		if id := c.Services[i].EventID; id != nil {
			v := *id
			c.Services[i].EventID = &v
		}
	}
	for i := range c.TransferRequests {
		c.TransferRequests[i].Items = cloneSlice(c.TransferRequests[i].Items)
	}
	return c
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// collection returns a pointer to the slice backing c.
func (s *Snapshot) collection(c Collection) any {
	switch c {
	case Users:
		return &s.Users
	case Events:
		return &s.Events
	case Services:
		return &s.Services
	case Tickets:
		return &s.Tickets
	case CollaborationRequests:
		return &s.CollaborationRequests
	case TransferRequests:
		return &s.TransferRequests
	case Reviews:
		return &s.Reviews
	case Notifications:
		return &s.Notifications
	}
	return nil
}

func (s *Snapshot) FindUser(id uint) (int, bool) {
	for i, u := range s.Users {
		if u.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindUserByEmail(email string) (int, bool) {
	for i, u := range s.Users {
		if domain.SameEmail(u.Email, email) {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindEvent(id uint) (int, bool) {
	for i, e := range s.Events {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindService(id uint) (int, bool) {
	for i, sv := range s.Services {
		if sv.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindTicket(id uint) (int, bool) {
	for i, t := range s.Tickets {
		if t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindValidLine returns the attendee's valid line for (event, type). There
// is at most one.
func (s *Snapshot) FindValidLine(userID, eventID uint, ticketType string) (int, bool) {
	for i, t := range s.Tickets {
		if t.UserID == userID && t.EventID == eventID && t.TicketType == ticketType && t.Status == domain.TicketValid {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindCollaborationRequest(id uint) (int, bool) {
	for i, r := range s.CollaborationRequests {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindTransferRequest(id uint) (int, bool) {
	for i, r := range s.TransferRequests {
		if r.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Snapshot) FindNotification(id uint) (int, bool) {
	for i, n := range s.Notifications {
		if n.ID == id {
			return i, true
		}
	}
	return -1, false
}

// nextID is max+1 over the ids currently in c.
func (s *Snapshot) nextID(c Collection) uint {
	var max uint
	bump := func(id uint) {
		if id > max {
			max = id
		}
	}
	switch c {
	case Users:
		for _, v := range s.Users {
			bump(v.ID)
		}
	case Events:
		for _, v := range s.Events {
			bump(v.ID)
		}
	case Services:
		for _, v := range s.Services {
			bump(v.ID)
		}
	case Tickets:
		for _, v := range s.Tickets {
			bump(v.ID)
		}
	case CollaborationRequests:
		for _, v := range s.CollaborationRequests {
			bump(v.ID)
		}
	case TransferRequests:
		for _, v := range s.TransferRequests {
			bump(v.ID)
		}
	case Reviews:
		for _, v := range s.Reviews {
			bump(v.ID)
		}
	case Notifications:
		for _, v := range s.Notifications {
			bump(v.ID)
		}
	}
	return max + 1
}
