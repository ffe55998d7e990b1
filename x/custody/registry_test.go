package custody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

func testAddr(b byte) vault.Address {
	a := make(vault.Address, vault.AddressLength)
	a[0] = b
	return a
}

func TestNewSignerRegistry(t *testing.T) {
	a, b, c := testAddr(1), testAddr(2), testAddr(3)

	cases := map[string]struct {
		signers []vault.Address
		wantErr *errors.Error
	}{
		"exactly three distinct": {
			signers: []vault.Address{a, b, c},
		},
		"too few": {
			signers: []vault.Address{a, b},
			wantErr: ErrInvalidSignerSet,
		},
		"too many": {
			signers: []vault.Address{a, b, c, testAddr(4)},
			wantErr: ErrInvalidSignerSet,
		},
		"none": {
			signers: nil,
			wantErr: ErrInvalidSignerSet,
		},
		"duplicate": {
			signers: []vault.Address{a, b, a},
			wantErr: ErrInvalidSignerSet,
		},
		"malformed address": {
			signers: []vault.Address{a, b, vault.Address("short")},
			wantErr: ErrInvalidSignerSet,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			r, err := NewSignerRegistry(tc.signers...)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.signers {
				assert.True(t, r.Has(s))
			}
			assert.False(t, r.Has(testAddr(99)))
		})
	}
}

func TestRegistryPersistence(t *testing.T) {
	r, err := NewSignerRegistry(testAddr(1), testAddr(2), testAddr(3))
	require.NoError(t, err)

	raw, err := r.Marshal()
	require.NoError(t, err)

	var restored SignerRegistry
	require.NoError(t, restored.Unmarshal(raw))
	assert.Equal(t, r.Signers(), restored.Signers())

	assert.Error(t, restored.Unmarshal(raw[:10]))
}

func TestRegistryIsImmutable(t *testing.T) {
	r, err := NewSignerRegistry(testAddr(1), testAddr(2), testAddr(3))
	require.NoError(t, err)

	// mutating the returned slice must not affect the registry
	signers := r.Signers()
	signers[0][0] = 0xFF
	assert.True(t, r.Has(testAddr(1)))
	assert.False(t, r.Has(signers[0]))
}
