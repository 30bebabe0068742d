package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventhub/internal/domain"
)

type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Load(ctx context.Context, strict bool) (*Snapshot, error) {
	args := m.Called(ctx, strict)
	snap, _ := args.Get(0).(*Snapshot)
	return snap, args.Error(1)
}

func (m *MockPersister) Persist(ctx context.Context, s *Snapshot, touched []Collection) error {
	args := m.Called(ctx, s, touched)
	return args.Error(0)
}

func seededSnapshot() *Snapshot {
	snap := NewSnapshot()
	snap.Users = append(snap.Users, domain.User{
		ID:     1,
		Email:  "ana@example.com",
		Type:   domain.UserAttendee,
		Credit: decimal.NewFromInt(10),
	})
	return snap
}

func openStore(t *testing.T, p *MockPersister) *Store {
	t.Helper()
	p.On("Load", mock.Anything, false).Return(seededSnapshot(), nil).Once()
	s, err := Open(context.Background(), p)
	require.NoError(t, err)
	return s
}

func TestStore_UpdateCommitsTouchedCollections(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)
	p.On("Persist", mock.Anything, mock.Anything, []Collection{Users, Notifications}).Return(nil).Once()

	err := s.Update(context.Background(), func(tx *Tx) error {
		tx.Users[0].Credit = decimal.NewFromInt(4)
		tx.Notifications = append(tx.Notifications, domain.Notification{ID: tx.NextID(Notifications), UserID: 1})
		tx.Touch(Notifications, Users)
		return nil
	})
	require.NoError(t, err)

	_ = s.View(context.Background(), func(snap *Snapshot) error {
		assert.True(t, snap.Users[0].Credit.Equal(decimal.NewFromInt(4)))
		assert.Len(t, snap.Notifications, 1)
		return nil
	})
	p.AssertExpectations(t)
}

func TestStore_UpdateFnErrorLeavesStateUntouched(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)

	err := s.Update(context.Background(), func(tx *Tx) error {
		tx.Users[0].Credit = decimal.Zero
		tx.Touch(Users)
		return domain.ErrInsufficientCredit
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)

	_ = s.View(context.Background(), func(snap *Snapshot) error {
		assert.True(t, snap.Users[0].Credit.Equal(decimal.NewFromInt(10)))
		return nil
	})
	p.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_PersistFailureIsStorageFailure(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)
	p.On("Persist", mock.Anything, mock.Anything, []Collection{Users}).Return(errors.New("disk full")).Once()

	err := s.Update(context.Background(), func(tx *Tx) error {
		tx.Users[0].Credit = decimal.Zero
		tx.Touch(Users)
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))

	_ = s.View(context.Background(), func(snap *Snapshot) error {
		assert.True(t, snap.Users[0].Credit.Equal(decimal.NewFromInt(10)))
		return nil
	})
}

func TestStore_UntouchedUpdateSkipsPersist(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)

	err := s.Update(context.Background(), func(tx *Tx) error {
		return nil
	})
	require.NoError(t, err)
	p.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_ReloadIsStrict(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)

	reloaded := NewSnapshot()
	p.On("Load", mock.Anything, true).Return(reloaded, nil).Once()
	require.NoError(t, s.Reload(context.Background()))

	_ = s.View(context.Background(), func(snap *Snapshot) error {
		assert.Empty(t, snap.Users)
		return nil
	})

	p.On("Load", mock.Anything, true).Return(nil, errors.New("corrupt")).Once()
	err := s.Reload(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
}

func TestStore_CanceledContext(t *testing.T) {
	p := new(MockPersister)
	s := openStore(t, p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Update(ctx, func(tx *Tx) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTx_NextIDSeesStagedRows(t *testing.T) {
	tx := newTx(seededSnapshot())

	assert.Equal(t, uint(2), tx.NextID(Users))
	tx.Users = append(tx.Users, domain.User{ID: 2})
	assert.Equal(t, uint(3), tx.NextID(Users))
	assert.Equal(t, uint(1), tx.NextID(Tickets))
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	eventID := uint(3)
	snap := NewSnapshot()
	snap.Events = append(snap.Events, domain.Event{
		ID:          3,
		TicketTypes: []domain.TicketType{{Type: "VIP", TotalQuantity: 5}},
	})
	snap.Services = append(snap.Services, domain.Service{ID: 1, EventID: &eventID})
	snap.TransferRequests = append(snap.TransferRequests, domain.TransferRequest{
		ID:    1,
		Items: []domain.TransferItem{{SourceTicketID: 1, TicketType: "VIP", Quantity: 1}},
	})

	c := snap.Clone()
	c.Events[0].TicketTypes[0].TotalQuantity = 0
	*c.Services[0].EventID = 9
	c.TransferRequests[0].Items[0].Quantity = 7

	assert.Equal(t, 5, snap.Events[0].TicketTypes[0].TotalQuantity)
	assert.Equal(t, uint(3), *snap.Services[0].EventID)
	assert.Equal(t, 1, snap.TransferRequests[0].Items[0].Quantity)
}

func TestSnapshot_FindValidLine(t *testing.T) {
	snap := NewSnapshot()
	snap.Tickets = []domain.Ticket{
		{ID: 1, UserID: 1, EventID: 1, TicketType: "VIP", Status: domain.TicketCancelled},
		{ID: 2, UserID: 1, EventID: 1, TicketType: "VIP", Status: domain.TicketValid},
	}

	i, ok := snap.FindValidLine(1, 1, "VIP")
	require.True(t, ok)
	assert.Equal(t, uint(2), snap.Tickets[i].ID)

	_, ok = snap.FindValidLine(1, 1, "Regular")
	assert.False(t, ok)
}
