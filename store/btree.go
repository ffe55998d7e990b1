package store

import (
	"bytes"
	"fmt"

	"github.com/google/btree"

	vault "github.com/open-custody/vault"
)

// DefaultFreeListSize is the size we hold for free nodes in the btree.
const DefaultFreeListSize = btree.DefaultFreeListSize

// BTreeCacheable adds a simple btree-based CacheWrap strategy to a KVStore.
type BTreeCacheable struct {
	vault.KVStore
	batch func() vault.Batch
}

var _ vault.CacheableKVStore = BTreeCacheable{}

// Cacheable wraps any batch-producing KVStore so every CacheWrap flushes
// through the given batch factory.
func Cacheable(kv vault.KVStore, batch func() vault.Batch) BTreeCacheable {
	return BTreeCacheable{KVStore: kv, batch: batch}
}

// CacheWrap returns a BTreeCacheWrap that can be later written to this
// store, or rolled back.
func (b BTreeCacheable) CacheWrap() vault.KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.batch(), nil)
}

// MemStore returns a simple in-memory implementation useful for tests.
// There is no persistence here.
func MemStore() vault.CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap places a btree cache over a KVStore.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  vault.KVStore
	batch vault.Batch
}

var _ vault.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store. All
// writes go both to the btree overlay and the batch, so that Write can
// flush them to the backing store in one shot.
//
// free may be nil, but set to an existing list to reuse it for memory
// savings.
func NewBTreeCacheWrap(kv vault.KVStore, batch vault.Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one.
// Don't change horses in mid-stream....
//
// Uses NonAtomicBatch as it is only backed by another in-memory overlay.
func (b BTreeCacheWrap) CacheWrap() vault.KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a non-atomic batch that eventually may write to our
// cachewrap.
func (b BTreeCacheWrap) NewBatch() vault.Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store and then cleans up.
func (b BTreeCacheWrap) Write() {
	b.batch.Write()
	b.Discard()
}

// Discard invalidates this CacheWrap and releases all data.
func (b BTreeCacheWrap) Discard() {
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree and to the batch.
func (b BTreeCacheWrap) Set(key, value []byte) {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	b.batch.Set(key, value)
}

// Delete deletes from the BTree and the batch.
func (b BTreeCacheWrap) Delete(key []byte) {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	b.batch.Delete(key)
}

// Get reads from btree if there, else the backing store.
func (b BTreeCacheWrap) Get(key []byte) []byte {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value
		case deletedItem:
			return nil
		default:
			panic(fmt.Sprintf("unknown item in btree: %#v", res))
		}
	}
	return b.back.Get(key)
}

// Has reads from btree if there, else the backing store.
func (b BTreeCacheWrap) Has(key []byte) bool {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch res.(type) {
		case setItem:
			return true
		case deletedItem:
			return false
		default:
			panic(fmt.Sprintf("unknown item in btree: %#v", res))
		}
	}
	return b.back.Has(key)
}

// Iterator over a domain of keys in ascending order. Combines results from
// the btree overlay and the backing store. The merged range is materialized
// up front, which is fine for the small state this engine keeps.
func (b BTreeCacheWrap) Iterator(start, end []byte) vault.Iterator {
	merged := make(map[string][]byte)
	deleted := make(map[string]bool)

	add := func(item btree.Item) bool {
		switch t := item.(type) {
		case setItem:
			merged[string(t.key)] = t.value
		case deletedItem:
			deleted[string(t.key)] = true
		}
		return true
	}
	if start == nil && end == nil {
		b.bt.Ascend(add)
	} else if start == nil {
		b.bt.AscendLessThan(bkey{end}, add)
	} else if end == nil {
		b.bt.AscendGreaterOrEqual(bkey{start}, add)
	} else {
		b.bt.AscendRange(bkey{start}, bkey{end}, add)
	}

	parent := b.back.Iterator(start, end)
	defer parent.Close()
	for ; parent.Valid(); parent.Next() {
		k := string(parent.Key())
		if deleted[k] {
			continue
		}
		if _, ok := merged[k]; !ok {
			merged[k] = parent.Value()
		}
	}

	models := make([]Model, 0, len(merged))
	for k, v := range merged {
		models = append(models, Model{Key: []byte(k), Value: v})
	}
	sortModels(models)
	return NewSliceIterator(models)
}

// Items to write to btree. We enforce all data in our btree implements
// keyer so we can compare nicely.
type keyer interface {
	Key() []byte
}

// bkey implements keyer and btree.Item and may be used for queries or
// embedded in data to store.
type bkey struct {
	key []byte
}

var _ keyer = bkey{}
var _ btree.Item = bkey{}

func (k bkey) Key() []byte {
	return k.key
}

// Less returns true iff second argument is greater than first.
//
// Panics if the item to compare doesn't implement keyer.
func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyer).Key()
	return bytes.Compare(k.key, cmp) < 0
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey{key}, value}
}
