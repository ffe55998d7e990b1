package store

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempLevelStore(t *testing.T) (*LevelStore, string, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "vault-store")
	require.NoError(t, err)
	path := filepath.Join(dir, "db")
	s, err := NewLevelStore(path)
	require.NoError(t, err)
	cleanup := func() {
		s.Close()
		os.RemoveAll(dir)
	}
	return s, path, cleanup
}

func TestLevelStoreRoundTrip(t *testing.T) {
	s, _, cleanup := tempLevelStore(t)
	defer cleanup()

	assert.Nil(t, s.Get([]byte("missing")))
	assert.False(t, s.Has([]byte("missing")))

	s.Set([]byte("k"), []byte("v"))
	assert.True(t, s.Has([]byte("k")))
	assert.Equal(t, []byte("v"), s.Get([]byte("k")))

	s.Delete([]byte("k"))
	assert.Nil(t, s.Get([]byte("k")))
}

func TestLevelStoreDurability(t *testing.T) {
	s, path, cleanup := tempLevelStore(t)
	defer cleanup()

	cache := s.CacheWrap()
	cache.Set([]byte("persist"), []byte("me"))
	cache.Write()

	require.NoError(t, s.Close())

	reopened, err := NewLevelStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, []byte("me"), reopened.Get([]byte("persist")))
}

func TestLevelStoreCacheWrapDiscard(t *testing.T) {
	s, _, cleanup := tempLevelStore(t)
	defer cleanup()

	s.Set([]byte("a"), []byte("1"))

	cache := s.CacheWrap()
	cache.Set([]byte("a"), []byte("2"))
	cache.Set([]byte("b"), []byte("3"))
	cache.Discard()

	assert.Equal(t, []byte("1"), s.Get([]byte("a")))
	assert.False(t, s.Has([]byte("b")))
}

func TestLevelStoreIterator(t *testing.T) {
	s, _, cleanup := tempLevelStore(t)
	defer cleanup()

	s.Set([]byte("p/a"), []byte("1"))
	s.Set([]byte("p/b"), []byte("2"))
	s.Set([]byte("q/c"), []byte("3"))

	it := s.Iterator([]byte("p/"), []byte("p0"))
	defer it.Close()

	var keys []string
	for ; it.Valid(); it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Equal(t, []string{"p/a", "p/b"}, keys)
}
