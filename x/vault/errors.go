package vault

import "github.com/iov-one/timevault/errors"

// Module errors of the vault package take the 1010-1019 code space.
var (
	// ErrAlreadyLocked is returned when a deposit is attempted while an
	// active lock for that recipient exists. The caller can wait for the
	// claim or choose another recipient.
	ErrAlreadyLocked = errors.Register(1010, "already locked")

	// ErrNotYetUnlocked is returned when a claim is attempted before the
	// unlock time of the lock. The caller can retry after the unlock time.
	ErrNotYetUnlocked = errors.Register(1011, "not yet unlocked")
)
