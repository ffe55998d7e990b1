package custody

import (
	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// The persisted state surface of a wallet is exactly three items: the
// immutable signer set, the safe mode flag and the sequence window.
var (
	signersKey  = []byte("custody:signers")
	safeModeKey = []byte("custody:safemode")
	windowKey   = []byte("custody:window")
)

func loadRegistry(db vault.KVStore) (*SignerRegistry, error) {
	raw := db.Get(signersKey)
	if raw == nil {
		return nil, errors.Wrap(ErrNotInitialized, "no signer set")
	}
	var r SignerRegistry
	if err := r.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "signer set")
	}
	return &r, nil
}

func saveRegistry(db vault.KVStore, r *SignerRegistry) error {
	raw, err := r.Marshal()
	if err != nil {
		return errors.Wrap(err, "signer set")
	}
	db.Set(signersKey, raw)
	return nil
}

// loadWindow treats a missing record as the all-zero initial window.
func loadWindow(db vault.KVStore) (*SequenceWindow, error) {
	var w SequenceWindow
	raw := db.Get(windowKey)
	if raw == nil {
		return &w, nil
	}
	if err := w.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "sequence window")
	}
	return &w, nil
}

func saveWindow(db vault.KVStore, w *SequenceWindow) error {
	raw, err := w.Marshal()
	if err != nil {
		return errors.Wrap(err, "sequence window")
	}
	db.Set(windowKey, raw)
	return nil
}

// loadGate treats a missing record as the inactive initial state.
func loadGate(db vault.KVStore) (*SafeModeGate, error) {
	var g SafeModeGate
	raw := db.Get(safeModeKey)
	if raw == nil {
		return &g, nil
	}
	if err := g.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "safe mode gate")
	}
	return &g, nil
}

func saveGate(db vault.KVStore, g *SafeModeGate) error {
	raw, err := g.Marshal()
	if err != nil {
		return errors.Wrap(err, "safe mode gate")
	}
	db.Set(safeModeKey, raw)
	return nil
}
