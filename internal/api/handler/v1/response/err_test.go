package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vietanh2810/eventhub/internal/domain"
)

func TestErrDomain(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrEventNotFound, http.StatusNotFound},
		{domain.ErrNotificationNotFound, http.StatusNotFound},
		{domain.ErrInvalidQuantity, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrOwnershipMismatch, http.StatusForbidden},
		{domain.ErrSaleWindowClosed, http.StatusConflict},
		{domain.InsufficientInventory("VIP"), http.StatusConflict},
		{domain.StorageFailure(errors.New("disk full")), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			e := ErrDomain(fmt.Errorf("handler -> %w", tc.err))
			assert.Equal(t, tc.status, e.HTTPStatusCode)
			assert.Equal(t, http.StatusText(tc.status), e.StatusText)
		})
	}
}

func TestErrDomain_HidesInternalDetail(t *testing.T) {
	e := ErrDomain(domain.StorageFailure(errors.New("/var/data/tickets.json: disk full")))
	assert.Empty(t, e.ErrorMsg)
	assert.Equal(t, string(domain.CodeStorageFailure), e.Code)

	e = ErrDomain(domain.InsufficientInventory("VIP"))
	assert.Equal(t, "InsufficientInventory(VIP)", e.ErrorMsg)
	assert.Equal(t, string(domain.KindState), e.Kind)
}
