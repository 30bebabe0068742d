package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventhub/internal/domain"
)

func TestAccount_RegisterAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.accounts.Register(ctx, Registration{
		Email:    "  carla@example.com ",
		Password: "secret123",
		Name:     "Carla",
		Type:     domain.UserAttendee,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), user.ID)
	assert.Equal(t, "carla@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, user.Credit.IsZero())

	got, err := f.accounts.Authenticate(ctx, "Carla@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.accounts.Authenticate(ctx, "carla@example.com", "wrong-pass1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.accounts.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	balance := f.credit(t, user.ID)
	assert.True(t, balance.IsZero())
}

func TestAccount_RegisterRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		reg  Registration
		want error
	}{
		{
			name: "weak password",
			reg:  Registration{Email: "dan@example.com", Password: "onlyletters", Name: "Dan", Type: domain.UserAttendee},
			want: domain.ErrWeakPassword,
		},
		{
			name: "short password",
			reg:  Registration{Email: "dan@example.com", Password: "ab1", Name: "Dan", Type: domain.UserAttendee},
			want: domain.ErrWeakPassword,
		},
		{
			name: "bad email",
			reg:  Registration{Email: "not-an-email", Password: "secret123", Name: "Dan", Type: domain.UserAttendee},
			want: domain.ErrInvalidInput,
		},
		{
			name: "unknown role",
			reg:  Registration{Email: "dan@example.com", Password: "secret123", Name: "Dan", Type: "admin"},
			want: domain.ErrInvalidInput,
		},
		{
			name: "email taken ignoring case",
			reg:  Registration{Email: "BOB@example.com", Password: "secret123", Name: "Bobby", Type: domain.UserAttendee},
			want: domain.ErrEmailTaken,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.accounts.Register(ctx, tc.reg)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Len(t, f.snapshot(t).Users, 4)
}

func TestAccount_GetUser(t *testing.T) {
	f := newFixture(t)

	u, err := f.accounts.GetUser(context.Background(), vendorID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserVendor, u.Type)

	_, err = f.accounts.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.accounts.CreditBalance(context.Background(), organizerID)
	assert.ErrorIs(t, err, domain.ErrIllegalUser)
}
