package orm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/timevault/store"
)

func TestSequenceCounting(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("mybucket", "id")

	for want := int64(1); want <= 5; want++ {
		got, err := seq.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Latest does not advance the counter.
	latest, raw, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest)
	assert.Equal(t, int64(5), DecodeSequence(raw))

	got, err := seq.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(6), got)
}

func TestSequenceKeysAreOrdered(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("mybucket", "id")

	var prev []byte
	for i := 0; i < 10; i++ {
		key, err := seq.NextVal(db)
		require.NoError(t, err)
		require.Len(t, key, 8)
		if prev != nil {
			assert.True(t, bytes.Compare(prev, key) < 0, "keys must be strictly increasing")
		}
		prev = key
	}
}

func TestSequenceIndependence(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("mybucket", "first")
	b := NewSequence("mybucket", "second")
	c := NewSequence("otherb", "first")

	for i := 0; i < 3; i++ {
		_, err := a.NextInt(db)
		require.NoError(t, err)
	}

	got, err := b.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
	got, err = c.NextInt(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestSequenceCodec(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
	assert.Equal(t, int64(87262), DecodeSequence(EncodeSequence(87262)))
}
