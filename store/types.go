package store

import "github.com/iov-one/timevault"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = timevault.ReadOnlyKVStore
type KVStore = timevault.KVStore
type SetDeleter = timevault.SetDeleter
type Batch = timevault.Batch
type Iterator = timevault.Iterator
type CacheableKVStore = timevault.CacheableKVStore
type KVCacheWrap = timevault.KVCacheWrap

// Model groups a key with its stored value.
type Model struct {
	Key   []byte
	Value []byte
}
