package custody

import (
	"github.com/open-custody/vault/errors"
)

// custody reserves codes 1000-1029.
var (
	// ErrUnauthorizedCaller is returned when the submitting party is not
	// a registered signer.
	ErrUnauthorizedCaller = errors.Register(1000, "unauthorized caller")

	// ErrMalformedSignature is returned when an approval signature has
	// the wrong length or identity recovery fails.
	ErrMalformedSignature = errors.Register(1001, "malformed signature")

	// ErrSafeMode is returned when safe mode is active and the
	// destination is not a registered signer.
	ErrSafeMode = errors.Register(1002, "safe mode restriction")

	// ErrExpired is returned when the operation's validity deadline has
	// already passed at execution time.
	ErrExpired = errors.Register(1003, "operation expired")

	// ErrSequenceReplayed is returned when the sequence id was already
	// accepted before.
	ErrSequenceReplayed = errors.Register(1004, "sequence id already used")

	// ErrSequenceTooLow is returned when the sequence id is below the
	// current window floor and may have been used.
	ErrSequenceTooLow = errors.Register(1005, "sequence id too low")

	// ErrSequenceTooHigh is returned when the sequence id is too far
	// above the current window floor. Rejecting it bounds the acceptance
	// window so a huge id cannot starve legitimate lower ids.
	ErrSequenceTooHigh = errors.Register(1006, "sequence id too high")

	// ErrUnauthorizedApprover is returned when the recovered approver
	// identity is not a registered signer.
	ErrUnauthorizedApprover = errors.Register(1007, "approver not authorized")

	// ErrSelfApproval is returned when the recovered approver identity
	// equals the caller.
	ErrSelfApproval = errors.Register(1008, "self-approval not permitted")

	// ErrTransferFailed is returned when the underlying value or token
	// movement did not complete.
	ErrTransferFailed = errors.Register(1009, "transfer failed")

	// ErrInvalidSignerSet is returned at construction when the signer
	// identities are not exactly three distinct addresses.
	ErrInvalidSignerSet = errors.Register(1010, "invalid signer set")

	// ErrNotInitialized is returned when loading a wallet from a store
	// that holds no signer set.
	ErrNotInitialized = errors.Register(1011, "wallet not initialized")

	// ErrAlreadyInitialized is returned on an attempt to initialize a
	// wallet on top of an existing one.
	ErrAlreadyInitialized = errors.Register(1012, "wallet already initialized")
)
