package custody

import (
	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// SafeModeGate is a one-way latch. Once tripped, every destination must be
// a registered signer, and nothing ever opens the gate again.
type SafeModeGate struct {
	active bool
}

var _ vault.Persistent = (*SafeModeGate)(nil)

// Activate trips the latch. Repeated activation is harmless.
func (g *SafeModeGate) Activate() {
	g.active = true
}

// Active returns whether safe mode is in effect. Pure query.
func (g *SafeModeGate) Active() bool {
	return g.active
}

// CheckDestination fails when safe mode is active and the destination is
// not a registered signer.
func (g *SafeModeGate) CheckDestination(dest vault.Address, registry *SignerRegistry) error {
	if !g.active {
		return nil
	}
	if !registry.Has(dest) {
		return errors.Wrapf(ErrSafeMode, "destination %s", dest)
	}
	return nil
}

// Marshal implements Persistent.
func (g *SafeModeGate) Marshal() ([]byte, error) {
	if g.active {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

// Unmarshal implements Persistent.
func (g *SafeModeGate) Unmarshal(raw []byte) error {
	if len(raw) != 1 || raw[0] > 1 {
		return errors.Wrapf(errors.ErrInput, "safe mode flag %X", raw)
	}
	g.active = raw[0] == 1
	return nil
}
