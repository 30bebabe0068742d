package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository/dao"
)

type MockSnapshotDAO struct {
	mock.Mock
}

func (m *MockSnapshotDAO) FindUsers(ctx context.Context) ([]dao.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.User), args.Error(1)
}

func (m *MockSnapshotDAO) FindEvents(ctx context.Context) ([]dao.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Event), args.Error(1)
}

func (m *MockSnapshotDAO) FindServices(ctx context.Context) ([]dao.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Service), args.Error(1)
}

func (m *MockSnapshotDAO) FindTickets(ctx context.Context) ([]dao.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Ticket), args.Error(1)
}

func (m *MockSnapshotDAO) FindCollaborationRequests(ctx context.Context) ([]dao.CollaborationRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.CollaborationRequest), args.Error(1)
}

func (m *MockSnapshotDAO) FindTransferRequests(ctx context.Context) ([]dao.TransferRequest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.TransferRequest), args.Error(1)
}

func (m *MockSnapshotDAO) FindReviews(ctx context.Context) ([]dao.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Review), args.Error(1)
}

func (m *MockSnapshotDAO) FindNotifications(ctx context.Context) ([]dao.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]dao.Notification), args.Error(1)
}

func (m *MockSnapshotDAO) Replace(ctx context.Context, tables []dao.Table) error {
	args := m.Called(ctx, tables)
	return args.Error(0)
}

func emptyDAO() *MockSnapshotDAO {
	m := new(MockSnapshotDAO)
	m.On("FindUsers", mock.Anything).Return([]dao.User{}, nil)
	m.On("FindEvents", mock.Anything).Return([]dao.Event{}, nil)
	m.On("FindServices", mock.Anything).Return([]dao.Service{}, nil)
	m.On("FindTickets", mock.Anything).Return([]dao.Ticket{}, nil)
	m.On("FindCollaborationRequests", mock.Anything).Return([]dao.CollaborationRequest{}, nil)
	m.On("FindTransferRequests", mock.Anything).Return([]dao.TransferRequest{}, nil)
	m.On("FindReviews", mock.Anything).Return([]dao.Review{}, nil)
	return m
}

func TestPostgresPersister_LoadConvertsRows(t *testing.T) {
	m := emptyDAO()
	m.On("FindNotifications", mock.Anything).Return([]dao.Notification{
		{ID: 1, UserID: 2, Title: "hello", Category: "plain", SentAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)},
	}, nil)

	snap, err := NewPostgresPersister(m).Load(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, domain.PlainPayload{}, snap.Notifications[0].Payload)
	assert.Equal(t, 9, snap.Notifications[0].CreatedAt.Hour())
	assert.Equal(t, time.Local, snap.Notifications[0].CreatedAt.Location())
}

func TestPostgresPersister_UnreadablePayload(t *testing.T) {
	rows := []dao.Notification{
		{ID: 1, UserID: 2, Category: "transfer_outcome", Payload: []byte("{broken")},
		{ID: 2, UserID: 2, Category: "plain"},
	}

	m := emptyDAO()
	m.On("FindNotifications", mock.Anything).Return(rows, nil)
	snap, err := NewPostgresPersister(m).Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, snap.Notifications, 1)
	assert.Equal(t, uint(2), snap.Notifications[0].ID)

	_, err = NewPostgresPersister(m).Load(context.Background(), true)
	assert.Error(t, err)
}

func TestPostgresPersister_PersistBuildsTables(t *testing.T) {
	m := new(MockSnapshotDAO)
	var got []dao.Table
	m.On("Replace", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).([]dao.Table) }).
		Return(nil)

	snap := NewSnapshot()
	snap.Events = []domain.Event{{
		ID: 1,
		TicketTypes: []domain.TicketType{
			{Type: "VIP", Price: decimal.NewFromInt(50), TotalQuantity: 5},
			{Type: "Regular", Price: decimal.NewFromInt(20), TotalQuantity: 50},
		},
	}}

	require.NoError(t, NewPostgresPersister(m).Persist(context.Background(), snap, []Collection{Events, Tickets}))
	require.Len(t, got, 2)

	events := *got[0].Rows.(*[]dao.Event)
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].TicketTypes[1].Position)
	assert.Equal(t, "Regular", events[0].TicketTypes[1].Type)
	assert.Len(t, got[0].Children, 1)
	assert.Equal(t, 0, got[1].Len)
}

func TestPostgresPersister_PersistMapsDuplicateEmail(t *testing.T) {
	m := new(MockSnapshotDAO)
	m.On("Replace", mock.Anything, mock.Anything).Return(dao.ErrUserEmailExists)

	err := NewPostgresPersister(m).Persist(context.Background(), NewSnapshot(), []Collection{Users})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	m = new(MockSnapshotDAO)
	m.On("Replace", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	err = NewPostgresPersister(m).Persist(context.Background(), NewSnapshot(), []Collection{Users})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailTaken)
}
