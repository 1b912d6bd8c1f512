/*
Package roles implements a bitmask based permission registry. Every address
can be assigned up to 128 independent boolean role flags that other packages
interpret as capabilities.

The registry has no temporal or value-custody semantics. It is a pure
lookup and bitwise-update structure used as a collaborator, for example as
the eligibility source for the cash controller.
*/
package roles

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

// Controller exposes the role registry operations.
type Controller struct {
	bucket orm.ModelBucket
}

// NewController returns a controller operating on the default bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// HasRole returns true if given flag is set for the address. An address that
// was never assigned any role reports false for every flag.
func (c Controller) HasRole(db orm.ReadOnlyKVStore, addr timevault.Address, flag uint8) (bool, error) {
	if err := ValidateFlag(flag); err != nil {
		return false, err
	}
	set, err := c.load(db, addr)
	if err != nil {
		return false, err
	}
	return set.Has(flag), nil
}

// Grant sets given flag for the address.
func (c Controller) Grant(db orm.KVStore, addr timevault.Address, flag uint8) error {
	if err := ValidateFlag(flag); err != nil {
		return err
	}
	set, err := c.load(db, addr)
	if err != nil {
		return err
	}
	set.Set(flag)
	return c.bucket.Put(db, addr, set)
}

// Revoke clears given flag for the address.
func (c Controller) Revoke(db orm.KVStore, addr timevault.Address, flag uint8) error {
	if err := ValidateFlag(flag); err != nil {
		return err
	}
	set, err := c.load(db, addr)
	if err != nil {
		return err
	}
	set.Clear(flag)
	return c.bucket.Put(db, addr, set)
}

// SetRoles replaces all 128 flags of the address at once with the given
// words. This is the bulk-set operation.
func (c Controller) SetRoles(db orm.KVStore, addr timevault.Address, low, high uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return c.bucket.Put(db, addr, &RoleSet{Low: low, High: high})
}

func (c Controller) load(db orm.ReadOnlyKVStore, addr timevault.Address) (*RoleSet, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "address")
	}
	var set RoleSet
	switch err := c.bucket.One(db, addr, &set); {
	case err == nil:
		return &set, nil
	case errors.ErrNotFound.Is(err):
		return &RoleSet{}, nil
	default:
		return nil, err
	}
}
