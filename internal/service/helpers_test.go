package service

import (
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventhub/internal/ledger"
	"github.com/vietanh2810/eventhub/internal/repository"
)

func creditUser(userID uint, amount decimal.Decimal) func(*repository.Tx) error {
	return func(tx *repository.Tx) error {
		return ledger.Credit(tx, userID, amount)
	}
}
