/*
Package store provides the key-value storage backends for the engine.

MemStore is a btree-backed in-memory store for tests and ephemeral use.
LevelStore persists through goleveldb and commits every batch atomically.
Both can be cache-wrapped: a cache-wrap collects writes on a scratch-pad
that is flushed to the parent as one unit, or discarded without a trace.
*/
package store
