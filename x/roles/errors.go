package roles

import "github.com/iov-one/timevault/errors"

// Module errors of the roles package take the 1020-1029 code space.
var (
	// ErrFlag is returned when a role flag number is outside of the
	// supported 0-127 range.
	ErrFlag = errors.Register(1020, "role flag out of range")
)
