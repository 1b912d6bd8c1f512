package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/timevault/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket is implemented by buckets that operate on Models rather than
// raw bytes. A bucket is a prefixed subspace of the database holding only
// one type of object.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists and
	// ErrNotFound otherwise.
	Has(db ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database under given key.
	Put(db KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db KVStore, key []byte) error

	// Walk calls fn for every entity stored in this bucket whose key
	// starts with given prefix, in ascending key order. The bucket prefix
	// is trimmed from keys passed to fn. A nil prefix walks the whole
	// bucket. Any error returned by fn aborts the walk.
	Walk(db ReadOnlyKVStore, prefix []byte, fn func(key, value []byte) error) error
}

// NewModelBucket returns a ModelBucket instance that stores entities under
// keys prefixed with given bucket name.
func NewModelBucket(name string) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

type modelBucket struct {
	name   string
	prefix []byte
}

var _ ModelBucket = (*modelBucket)(nil)

// DBKey is the full key we store in the db, including prefix. We copy into a
// new array rather than use append, as we don't want consecutive calls to
// overwrite the same byte array.
func (b *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(b.prefix)+len(key))
	copy(out, b.prefix)
	copy(out[len(b.prefix):], key)
	return out
}

func (b *modelBucket) One(db ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "cannot unmarshal into %T", dest)
	}
	return nil
}

func (b *modelBucket) Has(db ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (b *modelBucket) Put(db KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal model")
	}
	if err := db.Set(b.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (b *modelBucket) Delete(db KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	return db.Delete(b.dbKey(key))
}

func (b *modelBucket) Walk(db ReadOnlyKVStore, prefix []byte, fn func(key, value []byte) error) error {
	start := b.dbKey(prefix)
	iter, err := db.Iterator(start, prefixEnd(start))
	if err != nil {
		return err
	}
	defer iter.Release()

	for {
		key, value, err := iter.Next()
		switch {
		case err == nil:
			if err := fn(key[len(b.prefix):], value); err != nil {
				return err
			}
		case errors.ErrIteratorDone.Is(err):
			return nil
		default:
			return err
		}
	}
}

// prefixEnd returns the smallest key that is bigger than all keys starting
// with given prefix. Nil means an open range end.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
