package store

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	vault "github.com/open-custody/vault"
	"github.com/open-custody/vault/errors"
)

// LevelStore is a durable KVStore backed by goleveldb. Batches are applied
// through leveldb's own write batch, so a flushed cache-wrap either lands
// completely or not at all, even across a crash.
//
// Following the KVStore contract, storage layer failures surface as panics
// rather than errors. A misbehaving disk leaves no sane way to continue.
type LevelStore struct {
	db *leveldb.DB
}

var _ vault.CacheableKVStore = (*LevelStore)(nil)

// NewLevelStore opens (or creates) a leveldb database under the given
// directory.
func NewLevelStore(path string) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return &LevelStore{db: db}, nil
}

// Close releases the underlying database.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

// Get returns nil iff key doesn't exist.
func (s *LevelStore) Get(key []byte) []byte {
	value, err := s.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil
	}
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return value
}

// Has checks if a key exists.
func (s *LevelStore) Has(key []byte) bool {
	ok, err := s.db.Has(key, nil)
	if err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return ok
}

// Set sets the key.
func (s *LevelStore) Set(key, value []byte) {
	if err := s.db.Put(key, value, nil); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

// Delete deletes the key.
func (s *LevelStore) Delete(key []byte) {
	if err := s.db.Delete(key, nil); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
}

// Iterator over a domain of keys in ascending order. The range is
// materialized with copied bytes, as leveldb reuses its buffers.
func (s *LevelStore) Iterator(start, end []byte) vault.Iterator {
	it := s.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)
	defer it.Release()

	var models []Model
	for it.Next() {
		models = append(models, Model{
			Key:   append([]byte{}, it.Key()...),
			Value: append([]byte{}, it.Value()...),
		})
	}
	if err := it.Error(); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	return NewSliceIterator(models)
}

// NewBatch returns an atomic write batch.
func (s *LevelStore) NewBatch() vault.Batch {
	return &levelBatch{db: s.db, b: new(leveldb.Batch)}
}

// CacheWrap returns a scratch-pad over this store that flushes through an
// atomic leveldb batch.
func (s *LevelStore) CacheWrap() vault.KVCacheWrap {
	return NewBTreeCacheWrap(s, s.NewBatch(), nil)
}

type levelBatch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

var _ vault.Batch = (*levelBatch)(nil)

func (b *levelBatch) Set(key, value []byte) {
	b.b.Put(key, value)
}

func (b *levelBatch) Delete(key []byte) {
	b.b.Delete(key)
}

func (b *levelBatch) Write() {
	if err := b.db.Write(b.b, nil); err != nil {
		panic(errors.Wrap(errors.ErrDatabase, err.Error()))
	}
	b.b.Reset()
}
