package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/store"
)

// payload is a minimal model for testing the bucket plumbing.
type payload struct {
	value []byte
}

var _ Model = (*payload)(nil)

func (p *payload) Marshal() ([]byte, error) {
	return p.value, nil
}

func (p *payload) Unmarshal(raw []byte) error {
	p.value = append([]byte(nil), raw...)
	return nil
}

func (p *payload) Validate() error {
	if len(p.value) == 0 {
		return errors.Wrap(errors.ErrEmpty, "value")
	}
	return nil
}

func TestModelBucketPutGetDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("mytest")

	err := b.Put(db, []byte("alpha"), &payload{value: []byte("first")})
	require.NoError(t, err)

	var got payload
	require.NoError(t, b.One(db, []byte("alpha"), &got))
	assert.Equal(t, []byte("first"), got.value)

	require.NoError(t, b.Has(db, []byte("alpha")))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("beta"))))

	err = b.One(db, []byte("beta"), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	require.NoError(t, b.Delete(db, []byte("alpha")))
	assert.True(t, errors.ErrNotFound.Is(b.Has(db, []byte("alpha"))))

	// deleting twice reports the missing entity
	err = b.Delete(db, []byte("alpha"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestModelBucketPutRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("mytest")

	err := b.Put(db, []byte("alpha"), &payload{})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)

	err = b.Put(db, nil, &payload{value: []byte("x")})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)
}

func TestModelBucketIsolation(t *testing.T) {
	db := store.MemStore()
	first := NewModelBucket("first")
	second := NewModelBucket("second")

	require.NoError(t, first.Put(db, []byte("k"), &payload{value: []byte("1")}))

	// the same key in another bucket is a different entity
	err := second.Has(db, []byte("k"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketWalk(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("mytest")

	require.NoError(t, b.Put(db, []byte("a:1"), &payload{value: []byte("v1")}))
	require.NoError(t, b.Put(db, []byte("a:2"), &payload{value: []byte("v2")}))
	require.NoError(t, b.Put(db, []byte("b:1"), &payload{value: []byte("v3")}))

	var keys []string
	err := b.Walk(db, []byte("a:"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1", "a:2"}, keys)

	// a nil prefix visits the whole bucket in key order
	keys = keys[:0]
	err = b.Walk(db, nil, func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1", "a:2", "b:1"}, keys)

	// fn errors abort the walk
	calls := 0
	err = b.Walk(db, nil, func(key, value []byte) error {
		calls++
		return errors.ErrHuman
	})
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, calls)
}

func TestBucketNameMustBeValid(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("UpperCase") })
	assert.Panics(t, func() { NewModelBucket("ab") })
	assert.NotPanics(t, func() { NewModelBucket("good_name") })
}
