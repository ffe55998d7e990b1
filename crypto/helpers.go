package crypto

import (
	vault "github.com/open-custody/vault"
)

// Signer is the functionality we use from a private key.
// No serializing, to support hardware devices as well.
type Signer interface {
	Sign(digest []byte) ([]byte, error)
	PublicKey() *PublicKey
}

var _ Signer = (*PrivateKey)(nil)

// StdRecoverer recovers signer identities using the secp256k1 compact
// signature scheme. It is the production implementation of the recovery
// capability the authorization engine is parameterized over.
type StdRecoverer struct{}

// RecoverAddress implements the recovery capability.
func (StdRecoverer) RecoverAddress(digest, sig []byte) (vault.Address, error) {
	return RecoverAddress(digest, sig)
}
