package custody

import (
	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// SignerCount is the fixed number of registered co-signer identities.
const SignerCount = 3

// SignerRegistry is the immutable, ordered set of authorized identities.
// It is fixed at wallet creation and offers membership testing only.
type SignerRegistry struct {
	signers []vault.Address
}

var _ vault.Persistent = (*SignerRegistry)(nil)

// NewSignerRegistry builds a registry from exactly SignerCount distinct
// identities, in the given order.
func NewSignerRegistry(signers ...vault.Address) (*SignerRegistry, error) {
	if len(signers) != SignerCount {
		return nil, errors.Wrapf(ErrInvalidSignerSet, "got %d signers, want exactly %d", len(signers), SignerCount)
	}
	set := make([]vault.Address, 0, SignerCount)
	for i, s := range signers {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidSignerSet, "signer %d: %v", i, err)
		}
		for _, seen := range set {
			if seen.Equals(s) {
				return nil, errors.Wrapf(ErrInvalidSignerSet, "duplicate signer %s", s)
			}
		}
		set = append(set, s.Clone())
	}
	return &SignerRegistry{signers: set}, nil
}

// Has returns true iff the given identity is a registered signer.
func (r *SignerRegistry) Has(addr vault.Address) bool {
	for _, s := range r.signers {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// Signers returns a copy of the registered identities.
func (r *SignerRegistry) Signers() []vault.Address {
	cpy := make([]vault.Address, len(r.signers))
	for i, s := range r.signers {
		cpy[i] = s.Clone()
	}
	return cpy
}

// Validate implements Validater.
func (r *SignerRegistry) Validate() error {
	if len(r.signers) != SignerCount {
		return errors.Wrapf(ErrInvalidSignerSet, "%d signers", len(r.signers))
	}
	return nil
}

// Marshal implements Persistent: the signer addresses concatenated in
// registration order.
func (r *SignerRegistry) Marshal() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, 0, SignerCount*vault.AddressLength)
	for _, s := range r.signers {
		out = append(out, s...)
	}
	return out, nil
}

// Unmarshal implements Persistent.
func (r *SignerRegistry) Unmarshal(raw []byte) error {
	if len(raw) != SignerCount*vault.AddressLength {
		return errors.Wrapf(errors.ErrInput, "signer set length %d", len(raw))
	}
	signers := make([]vault.Address, SignerCount)
	for i := range signers {
		start := i * vault.AddressLength
		signers[i] = vault.Address(raw[start : start+vault.AddressLength]).Clone()
	}
	r.signers = signers
	return nil
}
