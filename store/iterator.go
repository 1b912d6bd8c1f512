package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/iov-one/timevault/errors"
)

// NewSliceIterator creates a new Iterator over this slice of models.
func NewSliceIterator(data []Model) Iterator {
	return &sliceIterator{data: data}
}

type sliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*sliceIterator)(nil)

// Next returns the next key/value pair, or a wrapped ErrIteratorDone when
// all entries were consumed.
func (s *sliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.Wrap(errors.ErrIteratorDone, "slice iterator")
	}
	val := s.data[s.idx]
	s.idx++
	return val.Key, val.Value, nil
}

// Release frees the iterator data.
func (s *sliceIterator) Release() {
	s.data = nil
	s.idx = 0
}

// mergeOverlay combines btree overlay items with the backing store iterator,
// taking into consideration overwrites and deletes. Both inputs must present
// their keys in the same order, descending when reverse is set.
//
// The result is fully materialized. All stores in this package are in-memory
// structures, so there is no benefit in lazy merging.
func mergeOverlay(overlay []btree.Item, parent Iterator, reverse bool) ([]Model, error) {
	defer parent.Release()

	after := func(a, b []byte) bool {
		if reverse {
			return bytes.Compare(a, b) < 0
		}
		return bytes.Compare(a, b) > 0
	}

	var res []Model
	pkey, pvalue, perr := parent.Next()

	for _, item := range overlay {
		okey := item.(keyer).Key()

		// flush all parent entries that sort before this overlay item
		for perr == nil && after(okey, pkey) {
			res = append(res, Model{Key: pkey, Value: pvalue})
			pkey, pvalue, perr = parent.Next()
		}
		if perr != nil && !errors.ErrIteratorDone.Is(perr) {
			return nil, perr
		}
		// the overlay shadows a parent entry with the same key
		if perr == nil && bytes.Equal(okey, pkey) {
			pkey, pvalue, perr = parent.Next()
		}

		switch t := item.(type) {
		case setItem:
			res = append(res, Model{Key: t.key, Value: t.value})
		case deletedItem:
			// skip
		default:
			return nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", item)
		}
	}

	// drain the rest of the parent
	for perr == nil {
		res = append(res, Model{Key: pkey, Value: pvalue})
		pkey, pvalue, perr = parent.Next()
	}
	if !errors.ErrIteratorDone.Is(perr) {
		return nil, perr
	}
	return res, nil
}
