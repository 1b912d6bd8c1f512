/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called buckets. Each bucket contains
only one type of object, has a primary index and easy operations for single
object lookup and prefix iteration.
*/
package orm

import "github.com/iov-one/timevault"

// Shorter names for the store interfaces used all over this package.

type ReadOnlyKVStore = timevault.ReadOnlyKVStore
type KVStore = timevault.KVStore

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	timevault.Persistent
	Validate() error
}
