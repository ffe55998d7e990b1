package custody

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFreshState(t *testing.T) {
	var w SequenceWindow
	assert.Equal(t, uint64(1), w.Next())

	// zero can never be accepted: it is always present in a slot
	err := w.Accept(0)
	assert.True(t, ErrSequenceReplayed.Is(err))
}

func TestWindowAcceptAndNext(t *testing.T) {
	var w SequenceWindow
	for _, id := range []uint64{5, 3, 9} {
		require.NoError(t, w.Accept(id))
	}
	assert.Equal(t, uint64(10), w.Next())
}

func TestWindowReplay(t *testing.T) {
	var w SequenceWindow
	require.NoError(t, w.Accept(7))
	require.NoError(t, w.Accept(8))

	err := w.Accept(7)
	assert.True(t, ErrSequenceReplayed.Is(err))
}

func TestWindowFloor(t *testing.T) {
	var w SequenceWindow
	// fill all ten slots so the floor rises above zero
	for id := uint64(2); id <= 11; id++ {
		require.NoError(t, w.Accept(id))
	}

	// id 1 was never used, but it is below the floor now
	err := w.Accept(1)
	assert.True(t, ErrSequenceTooLow.Is(err))

	// the floor itself reads as a replay
	err = w.Accept(2)
	assert.True(t, ErrSequenceReplayed.Is(err))
}

func TestWindowCeiling(t *testing.T) {
	var w SequenceWindow

	err := w.Accept(WindowRange + 1)
	assert.True(t, ErrSequenceTooHigh.Is(err))

	// exactly at the ceiling is fine
	require.NoError(t, w.Accept(WindowRange))
}

func TestWindowMinEviction(t *testing.T) {
	var w SequenceWindow
	for id := uint64(1); id <= 10; id++ {
		require.NoError(t, w.Accept(id))
	}
	// accepting one more evicts the minimum (1), not anything else
	require.NoError(t, w.Accept(11))

	err := w.Accept(1)
	assert.True(t, ErrSequenceTooLow.Is(err))
	for id := uint64(2); id <= 11; id++ {
		err := w.Accept(id)
		assert.True(t, ErrSequenceReplayed.Is(err), "id %d", id)
	}
}

func TestWindowPersistence(t *testing.T) {
	var w SequenceWindow
	for _, id := range []uint64{100, 42, 7} {
		require.NoError(t, w.Accept(id))
	}

	raw, err := w.Marshal()
	require.NoError(t, err)

	var restored SequenceWindow
	require.NoError(t, restored.Unmarshal(raw))
	assert.Equal(t, w.Next(), restored.Next())
	err = restored.Accept(42)
	assert.True(t, ErrSequenceReplayed.Is(err))
}

func TestWindowUnmarshalBadLength(t *testing.T) {
	var w SequenceWindow
	assert.Error(t, w.Unmarshal([]byte("short")))
}
