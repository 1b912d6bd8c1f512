package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorsIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantIs  bool
	}{
		"instance of the same root error": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped once": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"wrapped twice": {
			kind:   ErrNotFound,
			err:    Wrap(Wrap(ErrNotFound, "gone"), "nothing there"),
			wantIs: true,
		},
		"different root error": {
			kind:   ErrNotFound,
			err:    Wrap(ErrUnauthorized, "gone"),
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("stdlib"),
			wantIs: false,
		},
		"nil kind matches nil error": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"non-nil error does not match nil kind": {
			kind:   ErrNotFound,
			err:    nil,
			wantIs: false,
		},
		"multi error containing the kind": {
			kind:   ErrNotFound,
			err:    Append(ErrOverflow, Wrap(ErrNotFound, "gone")),
			wantIs: true,
		},
		"multi error not containing the kind": {
			kind:   ErrNotFound,
			err:    Append(ErrOverflow, ErrUnauthorized),
			wantIs: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantIs, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "no error"))
	assert.Nil(t, Wrapf(nil, "no %s", "error"))
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "lock")
	assert.Equal(t, "lock: not found", err.Error())

	err = Wrapf(ErrNotFound, "lock %d", 42)
	assert.Equal(t, "lock 42: not found", err.Error())
}

func TestNewPreservesKind(t *testing.T) {
	err := ErrNotFound.New("no such wallet")
	assert.True(t, ErrNotFound.Is(err))
	assert.Equal(t, "no such wallet: not found", err.Error())

	err = ErrNotFound.Newf("no such %s", "wallet")
	assert.True(t, ErrNotFound.Is(err))
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(3, "conflicting with not found")
	})
}

func TestAppend(t *testing.T) {
	// nil elements are dropped
	assert.Nil(t, Append(nil, nil))

	err := Append(nil, ErrNotFound, nil)
	require.Error(t, err)
	assert.True(t, ErrNotFound.Is(err))

	// appending to a multi error flattens it
	err = Append(err, ErrOverflow)
	assert.True(t, ErrNotFound.Is(err))
	assert.True(t, ErrOverflow.Is(err))
	assert.False(t, ErrUnauthorized.Is(err))
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("the end is near")
	}
	err := fail()
	require.Error(t, err)
	assert.True(t, ErrPanic.Is(err))
}
