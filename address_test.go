package vault

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	addr := NewAddress([]byte("some public key material"))
	require.NoError(t, addr.Validate())
	assert.Len(t, []byte(addr), AddressLength)

	// deterministic and collision free for distinct inputs
	assert.True(t, addr.Equals(NewAddress([]byte("some public key material"))))
	assert.False(t, addr.Equals(NewAddress([]byte("other material"))))

	assert.Nil(t, NewAddress(nil))
}

func TestAddressValidate(t *testing.T) {
	assert.Error(t, Address(nil).Validate())
	assert.Error(t, Address("too short").Validate())
	assert.NoError(t, NewAddress([]byte("x")).Validate())
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := NewAddress([]byte("identity"))

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var restored Address
	require.NoError(t, json.Unmarshal(raw, &restored))
	assert.True(t, addr.Equals(restored))
}

func TestAddressClone(t *testing.T) {
	addr := NewAddress([]byte("identity"))
	cpy := addr.Clone()
	cpy[0]++
	assert.False(t, addr.Equals(cpy))
}
