package roles

import (
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

// BucketName is where we store the role sets
const BucketName = "roles"

// FlagCount is the number of independent role flags per address.
const FlagCount = 128

var _ orm.Model = (*RoleSet)(nil)

// Validate implements orm.Model. Any combination of bits is a valid role
// set.
func (m *RoleSet) Validate() error {
	return nil
}

// Has returns true if given flag is set.
func (m *RoleSet) Has(flag uint8) bool {
	word, bit := locate(flag)
	if word == 0 {
		return m.Low&bit != 0
	}
	return m.High&bit != 0
}

// Set turns given flag on.
func (m *RoleSet) Set(flag uint8) {
	word, bit := locate(flag)
	if word == 0 {
		m.Low |= bit
	} else {
		m.High |= bit
	}
}

// Clear turns given flag off.
func (m *RoleSet) Clear(flag uint8) {
	word, bit := locate(flag)
	if word == 0 {
		m.Low &^= bit
	} else {
		m.High &^= bit
	}
}

// IsEmpty returns true if no flag is set.
func (m *RoleSet) IsEmpty() bool {
	return m.Low == 0 && m.High == 0
}

func locate(flag uint8) (word int, bit uint64) {
	if flag < 64 {
		return 0, 1 << uint(flag)
	}
	return 1, 1 << uint(flag-64)
}

// ValidateFlag returns an error if given flag number is outside of the
// supported range.
func ValidateFlag(flag uint8) error {
	if int(flag) >= FlagCount {
		return errors.Wrapf(ErrFlag, "flag %d", flag)
	}
	return nil
}

// NewBucket returns the bucket keeping role sets indexed by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}
