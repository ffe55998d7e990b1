package custody

import (
	"time"

	"github.com/tendermint/tendermint/libs/log"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/crypto"
	"github.com/open-custody/vault/errors"
	"github.com/open-custody/vault/x/ledger"
)

// Wallet is the aggregate root of the engine. It owns the signer registry,
// the safe mode gate and the sequence window, all persisted in the store
// it is constructed over.
//
// The host environment must apply operations against one wallet one at a
// time, in a single serial order. The wallet itself has no internal
// concurrency.
type Wallet struct {
	db     vault.CacheableKVStore
	rec    Recoverer
	mover  Mover
	logger log.Logger
	addr   vault.Address
}

// Option configures optional wallet capabilities.
type Option func(*Wallet)

// WithRecoverer replaces the signature recovery capability.
func WithRecoverer(rec Recoverer) Option {
	return func(w *Wallet) { w.rec = rec }
}

// WithMover replaces the transfer capability.
func WithMover(m Mover) Option {
	return func(w *Wallet) { w.mover = m }
}

// WithLogger sets the wallet logger.
func WithLogger(logger log.Logger) Option {
	return func(w *Wallet) { w.logger = logger }
}

// NewWallet initializes a fresh wallet over the given store with exactly
// three distinct signer identities. The signer set is permanent: it fails
// if the store already holds a wallet.
func NewWallet(db vault.CacheableKVStore, signers []vault.Address, opts ...Option) (*Wallet, error) {
	registry, err := NewSignerRegistry(signers...)
	if err != nil {
		return nil, err
	}
	if db.Has(signersKey) {
		return nil, errors.Wrap(ErrAlreadyInitialized, "signer set present")
	}

	cache := db.CacheWrap()
	if err := saveRegistry(cache, registry); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := saveWindow(cache, &SequenceWindow{}); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := saveGate(cache, &SafeModeGate{}); err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()

	return newWallet(db, registry, opts), nil
}

// LoadWallet restores a wallet previously initialized over the given
// store. It fails if the store holds no signer set.
func LoadWallet(db vault.CacheableKVStore, opts ...Option) (*Wallet, error) {
	registry, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	return newWallet(db, registry, opts), nil
}

func newWallet(db vault.CacheableKVStore, registry *SignerRegistry, opts []Option) *Wallet {
	raw, _ := registry.Marshal()
	w := &Wallet{
		db:     db,
		rec:    crypto.StdRecoverer{},
		mover:  ledger.NewBook(),
		logger: vault.DefaultLogger,
		addr:   vault.NewAddress(raw),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Address returns the wallet's own account identity, derived from the
// signer set.
func (w *Wallet) Address() vault.Address {
	return w.addr.Clone()
}

// SubmitOperation authorizes and executes one native value transfer. The
// caller must be a registered signer and op.Signature must be a second
// signer's approval of the canonical digest. On any failure the whole
// operation is rolled back and a typed error is returned.
func (w *Wallet) SubmitOperation(ctx vault.Context, caller vault.Address, op Operation) (*Result, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return w.submit(ctx, caller, transferCode, op.Destination, op.Value, op.Payload, op.Expiry, op.SequenceID, op.Signature, nil)
}

// SubmitTokenOperation authorizes and executes one token transfer. The
// digest is domain-tagged for token transfers, so the approval signature
// cannot be replayed as a native transfer.
func (w *Wallet) SubmitTokenOperation(ctx vault.Context, caller vault.Address, op TokenOperation) (*Result, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return w.submit(ctx, caller, tokenCode, op.Destination, op.Value, op.Token, op.Expiry, op.SequenceID, op.Signature, op.Token)
}

// submit runs the authorize-then-execute pipeline inside one cache-wrap.
// The cache is written only when both stages succeed, which is what makes
// a failed operation leave no observable state behind.
func (w *Wallet) submit(ctx vault.Context, caller vault.Address, code []byte,
	dest vault.Address, value uint64, payload []byte, expiry time.Time, seq uint64, sig []byte, token vault.Address) (res *Result, err error) {
	defer errors.Recover(&err)

	cache := w.db.CacheWrap()

	approver, digest, err := w.authorize(ctx, cache, caller, code, dest, value, payload, expiry, seq, sig)
	if err != nil {
		cache.Discard()
		w.logger.Debug("operation rejected", "caller", caller, "err", err)
		return nil, err
	}

	res, err = w.execute(cache, caller, approver, digest, dest, value, payload, token)
	if err != nil {
		cache.Discard()
		w.logger.Debug("operation aborted", "caller", caller, "err", err)
		return nil, err
	}

	cache.Write()
	w.logger.Info("operation committed",
		"caller", caller, "approver", approver, "destination", dest, "value", value)
	return res, nil
}

// ActivateSafeMode irreversibly restricts all future destinations to
// registered signers. Only a registered signer may trip the gate.
func (w *Wallet) ActivateSafeMode(ctx vault.Context, caller vault.Address) (res *Result, err error) {
	defer errors.Recover(&err)

	cache := w.db.CacheWrap()
	res, err = w.activateSafeMode(cache, caller)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	cache.Write()
	w.logger.Info("safe mode activated", "caller", caller)
	return res, nil
}

func (w *Wallet) activateSafeMode(db vault.KVStore, caller vault.Address) (*Result, error) {
	registry, err := loadRegistry(db)
	if err != nil {
		return nil, err
	}
	if !registry.Has(caller) {
		return nil, errors.Wrapf(ErrUnauthorizedCaller, "caller %s", caller)
	}
	gate, err := loadGate(db)
	if err != nil {
		return nil, err
	}
	gate.Activate()
	if err := saveGate(db, gate); err != nil {
		return nil, err
	}
	return &Result{
		Log:    "safe mode active",
		Events: []Event{SafeModeActivated{Caller: caller}},
	}, nil
}

// IsSigner returns true iff the given identity is a registered signer.
// Read-only query.
func (w *Wallet) IsSigner(addr vault.Address) bool {
	registry, err := loadRegistry(w.db)
	if err != nil {
		return false
	}
	return registry.Has(addr)
}

// NextSequenceID returns the lowest sequence id guaranteed to be
// acceptable. Read-only query; on a fresh wallet it returns 1.
func (w *Wallet) NextSequenceID() uint64 {
	window, err := loadWindow(w.db)
	if err != nil {
		return 0
	}
	return window.Next()
}

// SafeModeActive returns whether the gate has been tripped. Read-only
// query.
func (w *Wallet) SafeModeActive() bool {
	gate, err := loadGate(w.db)
	if err != nil {
		return false
	}
	return gate.Active()
}
