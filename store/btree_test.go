package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/timevault/errors"
)

// kvPairs reads a full iterator into memory.
func kvPairs(t *testing.T, iter Iterator) []Model {
	t.Helper()
	defer iter.Release()

	var models []Model
	for {
		key, value, err := iter.Next()
		switch {
		case err == nil:
			models = append(models, Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return models
		default:
			t.Fatalf("cannot get next item: %+v", err)
		}
	}
}

func TestMemStoreBasic(t *testing.T) {
	db := MemStore()

	value, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	value, err = db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
	has, err := db.Has([]byte("a"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, db.Delete([]byte("a")))
	has, err = db.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("base"), []byte("1")))

	// discarded changes never reach the parent
	cache := db.CacheWrap()
	require.NoError(t, cache.Set([]byte("extra"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("base")))
	cache.Discard()

	value, err := db.Get([]byte("base"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
	has, err := db.Has([]byte("extra"))
	require.NoError(t, err)
	assert.False(t, has)

	// written changes are applied as a group
	cache = db.CacheWrap()
	require.NoError(t, cache.Set([]byte("extra"), []byte("2")))
	require.NoError(t, cache.Delete([]byte("base")))
	require.NoError(t, cache.Write())

	value, err = db.Get([]byte("extra"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
	has, err = db.Has([]byte("base"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCacheWrapReadsThrough(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("shared"), []byte("parent")))

	cache := db.CacheWrap()
	defer cache.Discard()

	// parent state is visible
	value, err := cache.Get([]byte("shared"))
	require.NoError(t, err)
	assert.Equal(t, []byte("parent"), value)

	// local writes shadow the parent without modifying it
	require.NoError(t, cache.Set([]byte("shared"), []byte("local")))
	value, err = cache.Get([]byte("shared"))
	require.NoError(t, err)
	assert.Equal(t, []byte("local"), value)
	value, err = db.Get([]byte("shared"))
	require.NoError(t, err)
	assert.Equal(t, []byte("parent"), value)

	// a local delete hides the parent value
	require.NoError(t, cache.Delete([]byte("shared")))
	has, err := cache.Has([]byte("shared"))
	require.NoError(t, err)
	assert.False(t, has)
	has, err = db.Has([]byte("shared"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestCacheWrapNested(t *testing.T) {
	db := MemStore()

	outer := db.CacheWrap()
	require.NoError(t, outer.Set([]byte("a"), []byte("1")))

	inner := outer.CacheWrap()
	require.NoError(t, inner.Set([]byte("b"), []byte("2")))
	require.NoError(t, inner.Write())

	// inner write lands in outer, not in the root store
	has, err := db.Has([]byte("b"))
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, outer.Write())
	value, err := db.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), value)
	value, err = db.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), value)
}

func TestIteratorMergesOverlay(t *testing.T) {
	db := MemStore()
	require.NoError(t, db.Set([]byte("a"), []byte("1")))
	require.NoError(t, db.Set([]byte("c"), []byte("3")))
	require.NoError(t, db.Set([]byte("e"), []byte("5")))

	cache := db.CacheWrap()
	defer cache.Discard()
	require.NoError(t, cache.Set([]byte("b"), []byte("2")))  // new key
	require.NoError(t, cache.Set([]byte("c"), []byte("c3"))) // overwrite
	require.NoError(t, cache.Delete([]byte("e")))            // shadow delete

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	models := kvPairs(t, iter)
	require.Len(t, models, 3)
	assert.Equal(t, []byte("a"), models[0].Key)
	assert.Equal(t, []byte("1"), models[0].Value)
	assert.Equal(t, []byte("b"), models[1].Key)
	assert.Equal(t, []byte("2"), models[1].Value)
	assert.Equal(t, []byte("c"), models[2].Key)
	assert.Equal(t, []byte("c3"), models[2].Value)
}

func TestIteratorRange(t *testing.T) {
	db := MemStore()
	for _, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, db.Set([]byte(key), []byte(key)))
	}

	// end is exclusive
	iter, err := db.Iterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	models := kvPairs(t, iter)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("b"), models[0].Key)
	assert.Equal(t, []byte("c"), models[1].Key)

	// reverse order
	iter, err = db.ReverseIterator([]byte("b"), []byte("d"))
	require.NoError(t, err)
	models = kvPairs(t, iter)
	require.Len(t, models, 2)
	assert.Equal(t, []byte("c"), models[0].Key)
	assert.Equal(t, []byte("b"), models[1].Key)
}
