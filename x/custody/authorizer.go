package custody

import (
	"time"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/crypto"
	"github.com/open-custody/vault/errors"
)

// Recoverer is the external capability that recovers a signer's public
// identity from a digest and a signature. The production implementation is
// crypto.StdRecoverer; tests may inject a deterministic fake.
type Recoverer interface {
	RecoverAddress(digest, sig []byte) (vault.Address, error)
}

// authorize validates the two-party approval of one proposed operation.
// Each step is a hard gate: the first failure aborts with no partial
// effect (the caller runs this inside a cache-wrap). On success the
// sequence id is already recorded in db and the recovered approver
// identity is returned alongside the canonical digest.
//
// The sequence window mutation deliberately happens here, before any
// transfer is invoked, so a malicious destination cannot re-enter and
// reuse a not-yet-committed sequence id.
func (w *Wallet) authorize(ctx vault.Context, db vault.KVStore, caller vault.Address, code []byte,
	dest vault.Address, value uint64, payload []byte, expiry time.Time, seq uint64, sig []byte) (vault.Address, []byte, error) {

	registry, err := loadRegistry(db)
	if err != nil {
		return nil, nil, err
	}
	if !registry.Has(caller) {
		return nil, nil, errors.Wrapf(ErrUnauthorizedCaller, "caller %s", caller)
	}

	digest := operationDigest(code, dest, value, payload, expiry, seq)

	if len(sig) != crypto.SignatureLength {
		return nil, nil, errors.Wrapf(ErrMalformedSignature, "signature length %d", len(sig))
	}
	approver, err := w.rec.RecoverAddress(digest, sig)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrMalformedSignature, "%v", err)
	}

	gate, err := loadGate(db)
	if err != nil {
		return nil, nil, err
	}
	if err := gate.CheckDestination(dest, registry); err != nil {
		return nil, nil, err
	}

	now, err := vault.BlockTime(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !now.Before(expiry) {
		return nil, nil, errors.Wrapf(ErrExpired, "deadline %s, now %s", expiry.UTC(), now.UTC())
	}

	window, err := loadWindow(db)
	if err != nil {
		return nil, nil, err
	}
	if err := window.Accept(seq); err != nil {
		return nil, nil, err
	}
	if err := saveWindow(db, window); err != nil {
		return nil, nil, err
	}

	if !registry.Has(approver) {
		return nil, nil, errors.Wrapf(ErrUnauthorizedApprover, "approver %s", approver)
	}
	if approver.Equals(caller) {
		return nil, nil, errors.Wrapf(ErrSelfApproval, "signer %s", caller)
	}

	return approver, digest, nil
}
