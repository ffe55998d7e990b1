package ledger

import (
	"github.com/open-custody/vault/errors"
)

// ledger reserves codes 1100-1119.
var (
	// ErrInsufficientFunds is returned when the source account cannot
	// cover the amount to move.
	ErrInsufficientFunds = errors.Register(1100, "insufficient funds")

	// ErrEmptyAmount is returned on an attempt to move nothing.
	ErrEmptyAmount = errors.Register(1101, "empty amount")
)
