package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	base := MemStore()
	base.Set([]byte("a"), []byte("1"))

	cache := base.CacheWrap()
	cache.Set([]byte("b"), []byte("2"))
	cache.Delete([]byte("a"))

	// the scratch-pad sees its own writes
	assert.Nil(t, cache.Get([]byte("a")))
	assert.Equal(t, []byte("2"), cache.Get([]byte("b")))

	// the parent does not, until Write
	assert.Equal(t, []byte("1"), base.Get([]byte("a")))
	assert.False(t, base.Has([]byte("b")))

	cache.Write()
	assert.Nil(t, base.Get([]byte("a")))
	assert.Equal(t, []byte("2"), base.Get([]byte("b")))
}

func TestCacheWrapDiscardLeavesNoTrace(t *testing.T) {
	base := MemStore()
	base.Set([]byte("a"), []byte("1"))

	cache := base.CacheWrap()
	cache.Set([]byte("a"), []byte("changed"))
	cache.Set([]byte("z"), []byte("new"))
	cache.Discard()

	assert.Equal(t, []byte("1"), base.Get([]byte("a")))
	assert.False(t, base.Has([]byte("z")))
}

func TestCacheWrapNested(t *testing.T) {
	base := MemStore()
	first := base.CacheWrap()
	first.Set([]byte("k"), []byte("v1"))

	second := first.CacheWrap()
	second.Set([]byte("k"), []byte("v2"))
	assert.Equal(t, []byte("v2"), second.Get([]byte("k")))

	second.Discard()
	assert.Equal(t, []byte("v1"), first.Get([]byte("k")))

	first.Write()
	assert.Equal(t, []byte("v1"), base.Get([]byte("k")))
}

func TestCacheWrapIteratorOverlay(t *testing.T) {
	base := MemStore()
	base.Set([]byte("a"), []byte("1"))
	base.Set([]byte("b"), []byte("2"))
	base.Set([]byte("c"), []byte("3"))

	cache := base.CacheWrap()
	cache.Delete([]byte("b"))
	cache.Set([]byte("c"), []byte("30"))
	cache.Set([]byte("d"), []byte("4"))

	it := cache.Iterator([]byte("a"), []byte("z"))
	defer it.Close()

	var keys, values []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
		values = append(values, string(it.Value()))
	}
	require.Equal(t, []string{"a", "c", "d"}, keys)
	require.Equal(t, []string{"1", "30", "4"}, values)
}
