package custody

import (
	"crypto/sha256"
	"encoding/binary"
	"time"

	vault "github.com/open-custody/vault"
)

// Operation kind codes prefixing the digest preimage. The domain tag keeps
// a signature crafted for a native transfer from being replayed as a token
// transfer, and the other way around.
var (
	transferCode = []byte{0, 0xCA, 0x11, 1}
	tokenCode    = []byte{0, 0xCA, 0x11, 2}
)

// TransferDigest computes the canonical digest of a native value transfer.
// This is the message the second signer must sign.
//
// The preimage layout is:
//
//	code    | destination | value  | len(payload) | payload | expiry (unix) | sequence id
//	4 bytes | 20 bytes    | 8 (BE) | 4 (BE)       | n bytes | 8 (BE)        | 8 (BE)
//
// prehashed with sha256 for a constant length signing input.
func TransferDigest(dest vault.Address, value uint64, payload []byte, expiry time.Time, seq uint64) []byte {
	return operationDigest(transferCode, dest, value, payload, expiry, seq)
}

// TokenTransferDigest computes the canonical digest of a token transfer.
// The payload position carries the token reference.
func TokenTransferDigest(token, dest vault.Address, value uint64, expiry time.Time, seq uint64) []byte {
	return operationDigest(tokenCode, dest, value, token, expiry, seq)
}

func operationDigest(code []byte, dest vault.Address, value uint64, payload []byte, expiry time.Time, seq uint64) []byte {
	out := make([]byte, 0, len(code)+vault.AddressLength+8+4+len(payload)+8+8)
	out = append(out, code...)
	out = append(out, dest...)
	out = appendUint64(out, value)

	size := make([]byte, 4)
	binary.BigEndian.PutUint32(size, uint32(len(payload)))
	out = append(out, size...)
	out = append(out, payload...)

	out = appendUint64(out, uint64(expiry.Unix()))
	out = appendUint64(out, seq)

	digest := sha256.Sum256(out)
	return digest[:]
}

func appendUint64(out []byte, v uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, v)
	return append(out, raw...)
}
