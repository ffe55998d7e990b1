package crypto

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/open-custody/vault"
)

func TestSignRecoverRoundTrip(t *testing.T) {
	priv := GenPrivateKey()
	digest := sha256.Sum256([]byte("an operation to approve"))

	sig, err := priv.Sign(digest[:])
	require.NoError(t, err)
	require.Len(t, sig, SignatureLength)

	addr, err := RecoverAddress(digest[:], sig)
	require.NoError(t, err)
	assert.True(t, priv.PublicKey().Address().Equals(addr))
}

func TestRecoverWrongDigest(t *testing.T) {
	priv := GenPrivateKey()
	digest := sha256.Sum256([]byte("signed message"))
	other := sha256.Sum256([]byte("different message"))

	sig, err := priv.Sign(digest[:])
	require.NoError(t, err)

	// recovery over a different digest yields a different identity,
	// never the signer's
	addr, err := RecoverAddress(other[:], sig)
	if err == nil {
		assert.False(t, priv.PublicKey().Address().Equals(addr))
	}
}

func TestRecoverBadSignatureLength(t *testing.T) {
	digest := sha256.Sum256([]byte("whatever"))
	for _, n := range []int{0, 1, 64, 66} {
		_, err := RecoverAddress(digest[:], make([]byte, n))
		assert.Error(t, err, "length %d", n)
	}
}

func TestPrivateKeyFromBytes(t *testing.T) {
	priv := GenPrivateKey()
	restored, err := PrivateKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.Equal(t, priv.PublicKey().Bytes(), restored.PublicKey().Bytes())

	_, err = PrivateKeyFromBytes([]byte("short"))
	assert.Error(t, err)
}

func TestAddressDerivation(t *testing.T) {
	pub := GenPrivateKey().PublicKey()
	addr := pub.Address()
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), vault.AddressLength)

	// deterministic
	assert.True(t, addr.Equals(pub.Address()))
}
