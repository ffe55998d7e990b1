package custody

import (
	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// Mover performs the actual value movement the engine authorizes. The
// default implementation is the ledger extension's balance book; a host
// environment may inject a mover that settles value elsewhere. All calls
// receive the operation's cache-wrapped store, so a failed operation
// retains none of the mover's writes either.
type Mover interface {
	// Move transfers native value between accounts.
	Move(db vault.KVStore, src, dest vault.Address, amount uint64) error

	// MoveToken transfers a token balance between accounts.
	MoveToken(db vault.KVStore, token, src, dest vault.Address, amount uint64) error

	// Credit adds incoming native value to an account.
	Credit(db vault.KVStore, dest vault.Address, amount uint64) error
}

// execute performs the approved value movement and builds the observable
// record. The sequence id has already been recorded in db by authorize;
// a mover failure aborts the whole cache-wrapped operation, so the
// acceptance is rolled back along with everything else.
func (w *Wallet) execute(db vault.KVStore, caller, approver vault.Address, digest []byte,
	dest vault.Address, value uint64, payload []byte, token vault.Address) (*Result, error) {

	var err error
	if token == nil {
		err = w.mover.Move(db, w.addr, dest, value)
	} else {
		// the digest payload position carries the token reference, the
		// record keeps them apart
		payload = nil
		err = w.mover.MoveToken(db, token, w.addr, dest, value)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrTransferFailed, "%v", err)
	}

	event := Transacted{
		Caller:      caller,
		Approver:    approver,
		Digest:      digest,
		Destination: dest,
		Value:       value,
		Payload:     payload,
		Token:       token,
	}
	return &Result{
		Data:   digest,
		Log:    "transacted",
		Events: []Event{event},
	}, nil
}
