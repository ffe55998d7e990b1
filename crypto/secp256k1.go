package crypto

import (
	"github.com/btcsuite/btcd/btcec"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// SignatureLength is the exact byte length of a compact secp256k1
// signature: one recovery header byte followed by R and S.
const SignatureLength = 65

// PrivateKey wraps a secp256k1 private key.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// GenPrivateKey returns a random new private key.
func GenPrivateKey() *PrivateKey {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		// only fails when the system source of randomness is broken
		panic(err)
	}
	return &PrivateKey{key: key}
}

// PrivateKeyFromBytes restores a private key from its 32 byte raw form.
// Use for deterministic keys in tests, or keys loaded from a keystore.
func PrivateKeyFromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) != 32 {
		return nil, errors.Wrapf(errors.ErrInput, "private key length %d", len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), raw)
	return &PrivateKey{key: key}, nil
}

// Bytes returns the 32 byte raw form of the key.
func (p *PrivateKey) Bytes() []byte {
	return p.key.Serialize()
}

// Sign produces a compact, recoverable signature over the given digest.
func (p *PrivateKey) Sign(digest []byte) ([]byte, error) {
	sig, err := btcec.SignCompact(btcec.S256(), p.key, digest, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return sig, nil
}

// PublicKey returns the corresponding public key.
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: p.key.PubKey()}
}

// PublicKey wraps a secp256k1 public key.
type PublicKey struct {
	key *btcec.PublicKey
}

// PublicKeyFromBytes parses a 33 byte compressed public key.
func PublicKeyFromBytes(raw []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(raw, btcec.S256())
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &PublicKey{key: key}, nil
}

// Bytes returns the compressed serialization of the key.
func (p *PublicKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

// Address derives the identity address of this key.
func (p *PublicKey) Address() vault.Address {
	return vault.NewAddress(p.Bytes())
}

// RecoverAddress recovers the signer identity from a compact signature
// over the given digest. It fails if the signature is not exactly
// SignatureLength bytes, or if recovery is impossible.
func RecoverAddress(digest, sig []byte) (vault.Address, error) {
	if len(sig) != SignatureLength {
		return nil, errors.Wrapf(errors.ErrInput, "signature length %d, want %d", len(sig), SignatureLength)
	}
	key, _, err := btcec.RecoverCompact(btcec.S256(), sig, digest)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return (&PublicKey{key: key}).Address(), nil
}
