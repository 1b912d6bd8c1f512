package cash

import "github.com/iov-one/timevault/errors"

// Module errors of the cash package take the 1000-1009 code space.
var (
	// ErrNotEligible is returned when a destination wallet is refused the
	// asset kind it is about to receive.
	ErrNotEligible = errors.Register(1000, "recipient not eligible")
)
