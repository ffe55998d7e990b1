package vault

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/open-custody/vault/errors"
)

// AddressLength is the length of all addresses. It must not change during
// the lifetime of a store, as addresses are used as raw storage keys.
const AddressLength = 20

// Address represents a collision-free, one-way digest of a public identity.
//
// It will be of size AddressLength.
type Address []byte

// NewAddress hashes arbitrary identity material (typically a serialized
// public key) into an Address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Validate returns an error if the address is not the expected size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
	return nil
}

// String returns an uppercase hex representation.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Clone returns a copy that shares no memory with the original.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON parses the hex representation produced by MarshalJSON.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	if len(enc) == 0 || enc == "(nil)" {
		*a = nil
		return nil
	}
	data, err := hex.DecodeString(enc)
	if err != nil {
		return errors.Wrap(errors.ErrInput, "malformed hex address")
	}
	*a = data
	return (*a).Validate()
}
