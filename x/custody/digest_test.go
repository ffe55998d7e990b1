package custody

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDigestBindsEveryField(t *testing.T) {
	expiry := time.Unix(1700000000, 0)
	base := TransferDigest(testAddr(1), 100, []byte("data"), expiry, 5)

	assert.Len(t, base, 32)
	assert.Equal(t, base, TransferDigest(testAddr(1), 100, []byte("data"), expiry, 5))

	variants := [][]byte{
		TransferDigest(testAddr(2), 100, []byte("data"), expiry, 5),
		TransferDigest(testAddr(1), 101, []byte("data"), expiry, 5),
		TransferDigest(testAddr(1), 100, []byte("datb"), expiry, 5),
		TransferDigest(testAddr(1), 100, []byte("data"), expiry.Add(time.Second), 5),
		TransferDigest(testAddr(1), 100, []byte("data"), expiry, 6),
	}
	for i, v := range variants {
		assert.NotEqual(t, base, v, "variant %d", i)
	}
}

func TestDigestDomainSeparation(t *testing.T) {
	expiry := time.Unix(1700000000, 0)
	token := testAddr(0xAA)

	// a native transfer carrying the token reference as payload must not
	// collide with the token transfer of the same fields
	native := TransferDigest(testAddr(1), 100, token, expiry, 5)
	tokenized := TokenTransferDigest(token, testAddr(1), 100, expiry, 5)
	assert.NotEqual(t, native, tokenized)
}
