package timevault

import (
	"context"
	"time"
)

// Context is just an alias for the standard implementation. We use functions
// to extend it to our needs, keeping the context passing between packages
// uniform.
type Context = context.Context

type contextKey int

const (
	contextKeyTime contextKey = iota
)

// WithBlockTime sets the execution time for the current transaction. The
// hosting environment is the single time oracle: every operation performed
// with this context observes the same "now".
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the execution time as declared by the hosting
// environment. An error is returned if the time was not provided.
func BlockTime(ctx Context) (time.Time, bool) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	return val, ok
}

// IsExpired returns true if given time is in the past as compared to the
// "now" declared for the transaction. Expired means claimable when applied
// to an unlock time.
//
// This function panics if the execution time is not provided in the context.
// This must never happen. The panic is here to prevent a broken setup from
// processing data incorrectly.
func IsExpired(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic("transaction time is not present in the context")
	}
	return !t.Time().After(now)
}
