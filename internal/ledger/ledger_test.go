package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository"
)

func newStore(t *testing.T) *repository.Store {
	t.Helper()
	seed := repository.NewSnapshot()
	seed.Users = []domain.User{
		{ID: 1, Type: domain.UserAttendee, Credit: decimal.RequireFromString("5.00")},
		{ID: 2, Type: domain.UserOrganizer},
	}
	seed.Events = []domain.Event{{
		ID:          40,
		OrganizerID: 2,
		TicketTypes: []domain.TicketType{{Type: "Regular", Price: decimal.NewFromInt(20), TotalQuantity: 50}},
	}}
	s, err := repository.Open(context.Background(), repository.NewMemoryPersister(seed))
	require.NoError(t, err)
	return s
}

func remaining(t *testing.T, s *repository.Store) int {
	t.Helper()
	var n int
	require.NoError(t, s.View(context.Background(), func(snap *repository.Snapshot) error {
		var err error
		n, err = Remaining(snap, 40, "Regular")
		return err
	}))
	return n
}

func TestReserveAndRelease(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), func(tx *repository.Tx) error {
		return Reserve(tx, 40, "Regular", 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 48, remaining(t, s))

	err = s.Update(context.Background(), func(tx *repository.Tx) error {
		return Release(tx, 40, "Regular", 2)
	})
	require.NoError(t, err)
	assert.Equal(t, 50, remaining(t, s))
}

func TestReserve_Failures(t *testing.T) {
	s := newStore(t)

	tests := []struct {
		name    string
		eventID uint
		ticket  string
		qty     int
		wantErr error
	}{
		{"too many", 40, "Regular", 51, domain.InsufficientInventory("Regular")},
		{"unknown type", 40, "VIP", 1, domain.ErrUnknownTicketType},
		{"unknown event", 41, "Regular", 1, domain.ErrEventNotFound},
		{"zero quantity", 40, "Regular", 0, domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Update(context.Background(), func(tx *repository.Tx) error {
				return Reserve(tx, tt.eventID, tt.ticket, tt.qty)
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 50, remaining(t, s))
		})
	}
}

func TestReserve_ExactRemainder(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), func(tx *repository.Tx) error {
		return Reserve(tx, 40, "Regular", 50)
	})
	require.NoError(t, err)
	assert.Equal(t, 0, remaining(t, s))
}

func TestDebitAndCredit(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), func(tx *repository.Tx) error {
		return Debit(tx, 1, decimal.RequireFromString("5.00"))
	})
	require.NoError(t, err)

	err = s.Update(context.Background(), func(tx *repository.Tx) error {
		return Debit(tx, 1, decimal.RequireFromString("0.01"))
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)

	err = s.Update(context.Background(), func(tx *repository.Tx) error {
		return Credit(tx, 1, decimal.NewFromInt(20))
	})
	require.NoError(t, err)

	_ = s.View(context.Background(), func(snap *repository.Snapshot) error {
		balance, err := Balance(snap, 1)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.NewFromInt(20)), balance.String())
		return nil
	})
}

func TestCredit_NonAttendee(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), func(tx *repository.Tx) error {
		return Credit(tx, 2, decimal.NewFromInt(1))
	})
	assert.ErrorIs(t, err, domain.ErrIllegalUser)

	err = s.Update(context.Background(), func(tx *repository.Tx) error {
		return Debit(tx, 9, decimal.NewFromInt(1))
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDebit_NegativeAmount(t *testing.T) {
	s := newStore(t)

	err := s.Update(context.Background(), func(tx *repository.Tx) error {
		return Debit(tx, 1, decimal.NewFromInt(-1))
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
