package custody

import (
	"strconv"

	cmn "github.com/tendermint/tendermint/libs/common"

	vault "github.com/open-custody/vault"
)

// Event is an observable record emitted by a successfully committed
// operation. Events are never emitted for aborted operations.
type Event interface {
	// Tags returns the indexable key-value representation of the event.
	Tags() []cmn.KVPair
}

// Transacted records a completed outgoing transfer. For token transfers
// Token is set and Payload is empty; for native transfers it is the other
// way around.
type Transacted struct {
	Caller      vault.Address
	Approver    vault.Address
	Digest      []byte
	Destination vault.Address
	Value       uint64
	Payload     []byte
	Token       vault.Address
}

// Tags implements Event.
func (e Transacted) Tags() []cmn.KVPair {
	tags := []cmn.KVPair{
		{Key: []byte("action"), Value: []byte("transact")},
		{Key: []byte("caller"), Value: []byte(e.Caller.String())},
		{Key: []byte("approver"), Value: []byte(e.Approver.String())},
		{Key: []byte("destination"), Value: []byte(e.Destination.String())},
		{Key: []byte("value"), Value: []byte(strconv.FormatUint(e.Value, 10))},
	}
	if e.Token != nil {
		tags = append(tags, cmn.KVPair{Key: []byte("token"), Value: []byte(e.Token.String())})
	}
	return tags
}

// SafeModeActivated records the irreversible transition into safe mode.
type SafeModeActivated struct {
	Caller vault.Address
}

// Tags implements Event.
func (e SafeModeActivated) Tags() []cmn.KVPair {
	return []cmn.KVPair{
		{Key: []byte("action"), Value: []byte("safe-mode")},
		{Key: []byte("caller"), Value: []byte(e.Caller.String())},
	}
}

// Deposited records unsolicited incoming value.
type Deposited struct {
	Sender vault.Address
	Amount uint64
	Data   []byte
}

// Tags implements Event.
func (e Deposited) Tags() []cmn.KVPair {
	return []cmn.KVPair{
		{Key: []byte("action"), Value: []byte("deposit")},
		{Key: []byte("sender"), Value: []byte(e.Sender.String())},
		{Key: []byte("amount"), Value: []byte(strconv.FormatUint(e.Amount, 10))},
	}
}

// Result captures any non-error outcome of a committed operation, to make
// sure people use errors for the error cases.
type Result struct {
	// Data is a machine-parseable return value, the operation digest for
	// transfers.
	Data []byte
	// Log is a human-readable informational string.
	Log string
	// Events are the typed records emitted by the operation.
	Events []Event
}

// Tags flattens all event tags, for hosts that index by key-value pairs.
func (r *Result) Tags() []cmn.KVPair {
	var tags []cmn.KVPair
	for _, e := range r.Events {
		tags = append(tags, e.Tags()...)
	}
	return tags
}
