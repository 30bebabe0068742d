package ledger

import "errors"

var errNegativeAmount = errors.New("amount must not be negative")
