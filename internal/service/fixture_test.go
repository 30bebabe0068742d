package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository"
)

const (
	organizerID = uint(1)
	attendeeID  = uint(2)
	bobID       = uint(3)
	vendorID    = uint(4)
	eventID     = uint(40)
	serviceID   = uint(7)
)

// configured is the inventory each ticket type of the fixture event
// started with.
var configured = map[string]int{"Regular": 50, "VIP": 10}

type fixture struct {
	store     *repository.Store
	persister *repository.MemoryPersister
	clock     *clock.Fake

	tickets        *TicketService
	transfers      *TransferService
	collaborations *CollaborationService
	reviews        *ReviewService
	notifications  *NotificationService
	accounts       *AccountService
	catalog        *CatalogService
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}

func mustDateTime(t time.Time) domain.DateTime {
	return domain.DateTime{Time: t}
}

func seed() *repository.Snapshot {
	snap := repository.NewSnapshot()
	snap.Users = []domain.User{
		{ID: organizerID, Email: "olga@example.com", Name: "Olga", Surname: "Orsini", Phone: "+33123456789", Type: domain.UserOrganizer},
		{ID: attendeeID, Email: "ana@example.com", Name: "Ana", Type: domain.UserAttendee, Credit: decimal.RequireFromString("5.00")},
		{ID: bobID, Email: "Bob@Example.com", Name: "Bob", Type: domain.UserAttendee},
		{ID: vendorID, Email: "vic@example.com", Name: "Vic", Type: domain.UserVendor},
	}
	snap.Events = []domain.Event{{
		ID:          eventID,
		OrganizerID: organizerID,
		Title:       "Jazz Night",
		StartDate:   domain.NewDate(2026, time.June, 10),
		EndDate:     domain.NewDate(2026, time.June, 11),
		StartTime:   "20:00",
		Location:    "Lyon",
		TicketTypes: []domain.TicketType{
			{Type: "Regular", Price: decimal.RequireFromString("20.00"), TotalQuantity: configured["Regular"]},
			{Type: "VIP", Price: decimal.RequireFromString("50.00"), TotalQuantity: configured["VIP"]},
		},
		TicketSaleDeadline:   mustDateTime(at(2026, time.June, 10, 18, 0)),
		TicketCancelDeadline: mustDateTime(at(2026, time.June, 9, 12, 0)),
	}}
	snap.Services = []domain.Service{{
		ID:       serviceID,
		VendorID: vendorID,
		Name:     "Sound system",
		Price:    decimal.NewFromInt(300),
		Status:   domain.ServiceAvailable,
	}}
	return snap
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	p := repository.NewMemoryPersister(seed())
	store, err := repository.Open(context.Background(), p)
	require.NoError(t, err)

	clk := clock.NewFake(at(2026, time.May, 1, 10, 0))
	return &fixture{
		store:          store,
		persister:      p,
		clock:          clk,
		tickets:        NewTicketService(store, clk),
		transfers:      NewTransferService(store, clk),
		collaborations: NewCollaborationService(store, clk),
		reviews:        NewReviewService(store, clk),
		notifications:  NewNotificationService(store, clk),
		accounts:       NewAccountService(store),
		catalog:        NewCatalogService(store),
	}
}

func (f *fixture) snapshot(t *testing.T) *repository.Snapshot {
	t.Helper()
	var out *repository.Snapshot
	require.NoError(t, f.store.View(context.Background(), func(snap *repository.Snapshot) error {
		out = snap.Clone()
		return nil
	}))
	return out
}

func (f *fixture) remaining(t *testing.T, ticketType string) int {
	t.Helper()
	snap := f.snapshot(t)
	i, ok := snap.FindEvent(eventID)
	require.True(t, ok)
	return snap.Events[i].TicketTypes[snap.Events[i].FindTicketType(ticketType)].TotalQuantity
}

func (f *fixture) credit(t *testing.T, userID uint) decimal.Decimal {
	t.Helper()
	balance, err := f.accounts.CreditBalance(context.Background(), userID)
	require.NoError(t, err)
	return balance
}

// held sums the user's valid quantity for (event, type).
func (f *fixture) held(t *testing.T, userID uint, ticketType string) int {
	t.Helper()
	n := 0
	for _, tk := range f.snapshot(t).Tickets {
		if tk.UserID == userID && tk.EventID == eventID && tk.TicketType == ticketType && tk.Status == domain.TicketValid {
			n += tk.QuantityBought
		}
	}
	return n
}

// requireInvariants checks conservation, credit non-negativity and
// ownership uniqueness on the committed state.
func (f *fixture) requireInvariants(t *testing.T) {
	t.Helper()
	snap := f.snapshot(t)

	for ticketType, total := range configured {
		issued := 0
		lines := map[uint]int{}
		for _, tk := range snap.Tickets {
			if tk.EventID != eventID || tk.TicketType != ticketType || !tk.IsHolding() {
				continue
			}
			issued += tk.QuantityBought
			lines[tk.UserID]++
		}
		require.Equal(t, total, f.remaining(t, ticketType)+issued, "conservation for %s", ticketType)
		for user, n := range lines {
			require.LessOrEqual(t, n, 1, "user %d holds %d valid %s lines", user, n, ticketType)
		}
	}

	for _, u := range snap.Users {
		require.False(t, u.Credit.IsNegative(), "user %d credit %s", u.ID, u.Credit)
	}
}

func cart(ticketType string, qty int) []TicketQuantity {
	return []TicketQuantity{{TicketType: ticketType, Quantity: qty}}
}

func (f *fixture) notificationsFor(t *testing.T, userID uint) []domain.Notification {
	t.Helper()
	list, err := f.notifications.List(context.Background(), userID)
	require.NoError(t, err)
	return list
}
