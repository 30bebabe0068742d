package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// Debit removes amount from an attendee's credit. A zero amount is a no-op
// that still checks the user.
func Debit(tx *repository.Tx, userID uint, amount decimal.Decimal) error {
	i, err := attendee(tx.Snapshot, userID)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return domain.InvalidInput(errNegativeAmount)
	}
	if amount.IsZero() {
		return nil
	}
	if tx.Users[i].Credit.LessThan(amount) {
		return domain.ErrInsufficientCredit
	}
	tx.Users[i].Credit = tx.Users[i].Credit.Sub(amount)
	tx.Touch(repository.Users)
	return nil
}

// Credit adds amount to an attendee's credit. Other roles cannot hold
// credit.
func Credit(tx *repository.Tx, userID uint, amount decimal.Decimal) error {
	i, err := attendee(tx.Snapshot, userID)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return domain.InvalidInput(errNegativeAmount)
	}
	if amount.IsZero() {
		return nil
	}
	tx.Users[i].Credit = tx.Users[i].Credit.Add(amount)
	tx.Touch(repository.Users)
	return nil
}

func Balance(snap *repository.Snapshot, userID uint) (decimal.Decimal, error) {
	i, err := attendee(snap, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return snap.Users[i].Credit, nil
}

func attendee(snap *repository.Snapshot, userID uint) (int, error) {
	i, ok := snap.FindUser(userID)
	if !ok {
		return -1, domain.ErrUserNotFound
	}
	if !snap.Users[i].IsAttendee() {
		return -1, domain.ErrIllegalUser
	}
	return i, nil
}
