package custody

import (
	"time"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// Operation describes one proposed native value transfer. It is ephemeral:
// consumed entirely within a single authorization attempt, never persisted.
type Operation struct {
	// Destination receives the value.
	Destination vault.Address
	// Value is the amount to move.
	Value uint64
	// Payload is arbitrary data attached to the transfer, bound into the
	// signed digest.
	Payload []byte
	// Expiry is the deadline after which the operation is invalid.
	Expiry time.Time
	// SequenceID is the caller-chosen anti-replay identifier.
	SequenceID uint64
	// Signature is the second signer's compact signature over the
	// canonical digest.
	Signature []byte
}

// Validate implements Validater.
func (op Operation) Validate() error {
	if err := op.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}

// TokenOperation describes one proposed token transfer.
type TokenOperation struct {
	// Token references the token whose balance moves.
	Token vault.Address
	// Destination receives the tokens.
	Destination vault.Address
	// Value is the amount to move.
	Value uint64
	// Expiry is the deadline after which the operation is invalid.
	Expiry time.Time
	// SequenceID is the caller-chosen anti-replay identifier.
	SequenceID uint64
	// Signature is the second signer's compact signature over the
	// canonical digest.
	Signature []byte
}

// Validate implements Validater.
func (op TokenOperation) Validate() error {
	if err := op.Token.Validate(); err != nil {
		return errors.Wrap(err, "token")
	}
	if err := op.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}
