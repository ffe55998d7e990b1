package custody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeModeGateLatch(t *testing.T) {
	var g SafeModeGate
	assert.False(t, g.Active())

	g.Activate()
	assert.True(t, g.Active())

	// repeated activation is harmless and the gate never reopens
	g.Activate()
	assert.True(t, g.Active())
}

func TestSafeModeCheckDestination(t *testing.T) {
	registry, err := NewSignerRegistry(testAddr(1), testAddr(2), testAddr(3))
	require.NoError(t, err)

	var g SafeModeGate

	// inactive gate lets anything through
	assert.NoError(t, g.CheckDestination(testAddr(9), registry))

	g.Activate()
	assert.NoError(t, g.CheckDestination(testAddr(1), registry))
	err = g.CheckDestination(testAddr(9), registry)
	assert.True(t, ErrSafeMode.Is(err))
}

func TestSafeModeGatePersistence(t *testing.T) {
	var g SafeModeGate
	g.Activate()

	raw, err := g.Marshal()
	require.NoError(t, err)

	var restored SafeModeGate
	require.NoError(t, restored.Unmarshal(raw))
	assert.True(t, restored.Active())

	assert.Error(t, restored.Unmarshal([]byte{7}))
	assert.Error(t, restored.Unmarshal(nil))
}
