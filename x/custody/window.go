package custody

import (
	"encoding/binary"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

const (
	// WindowSize is the number of recently accepted sequence ids the
	// window keeps. Membership is unordered; only the set matters.
	WindowSize = 10

	// WindowRange bounds how far above the current floor an accepted id
	// may reach. Rejecting anything higher keeps one oversized id from
	// locking out all legitimate lower ids.
	WindowRange = 10000
)

// SequenceWindow is a fixed-capacity anti-replay structure: the ten most
// recently accepted sequence ids under a min-eviction policy. The all-zero
// initial state means id 0 can never be accepted.
type SequenceWindow struct {
	slots [WindowSize]uint64
}

var _ vault.Persistent = (*SequenceWindow)(nil)

// Accept admits the given sequence id into the window, evicting the
// current minimum. It fails on a replayed id, an id at or below the
// current floor, and an id more than WindowRange above the floor.
// Eviction of the minimum slot is the only mutation.
func (w *SequenceWindow) Accept(id uint64) error {
	minIdx := 0
	for i, s := range w.slots {
		if s == id {
			return errors.Wrapf(ErrSequenceReplayed, "id %d", id)
		}
		if s < w.slots[minIdx] {
			minIdx = i
		}
	}
	min := w.slots[minIdx]
	if id < min {
		return errors.Wrapf(ErrSequenceTooLow, "id %d below floor %d", id, min)
	}
	// id > min here, so the subtraction cannot underflow
	if id-min > WindowRange {
		return errors.Wrapf(ErrSequenceTooHigh, "id %d above floor %d by more than %d", id, min, WindowRange)
	}
	w.slots[minIdx] = id
	return nil
}

// Next returns the lowest sequence id that is guaranteed not to collide
// with any accepted one: the window maximum plus one. Pure query.
func (w *SequenceWindow) Next() uint64 {
	var max uint64
	for _, s := range w.slots {
		if s > max {
			max = s
		}
	}
	return max + 1
}

// Marshal implements Persistent: the ten slots, big-endian.
func (w *SequenceWindow) Marshal() ([]byte, error) {
	out := make([]byte, WindowSize*8)
	for i, s := range w.slots {
		binary.BigEndian.PutUint64(out[i*8:], s)
	}
	return out, nil
}

// Unmarshal implements Persistent.
func (w *SequenceWindow) Unmarshal(raw []byte) error {
	if len(raw) != WindowSize*8 {
		return errors.Wrapf(errors.ErrInput, "window length %d", len(raw))
	}
	for i := range w.slots {
		w.slots[i] = binary.BigEndian.Uint64(raw[i*8:])
	}
	return nil
}
