package roles

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

// HolderGuard decides whether an address may hold a given asset kind based
// on the role registry. It satisfies the cash.Guard interface.
//
// Flags maps a ticker to the role flag that must be set for an address to
// hold that asset kind. Tickers without an entry are unrestricted.
type HolderGuard struct {
	roles Controller
	flags map[string]uint8
}

// NewHolderGuard returns a guard gating the given tickers behind role flags.
func NewHolderGuard(roles Controller, flags map[string]uint8) HolderGuard {
	cpy := make(map[string]uint8, len(flags))
	for ticker, flag := range flags {
		cpy[ticker] = flag
	}
	return HolderGuard{
		roles: roles,
		flags: cpy,
	}
}

// CanHold returns nil if the address may hold coins of given ticker.
func (g HolderGuard) CanHold(db orm.ReadOnlyKVStore, addr timevault.Address, ticker string) error {
	flag, ok := g.flags[ticker]
	if !ok {
		return nil
	}
	has, err := g.roles.HasRole(db, addr, flag)
	if err != nil {
		return err
	}
	if !has {
		return errors.Wrapf(errors.ErrUnauthorized, "missing role %d for %s", flag, ticker)
	}
	return nil
}
