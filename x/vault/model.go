package vault

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

const (
	// LockBucketName is where we store the active locks
	LockBucketName = "lock"
	// ClaimBucketName is where we store the claim events
	ClaimBucketName = "claim"
)

var _ orm.Model = (*Lock)(nil)
var _ orm.Model = (*ClaimEvent)(nil)

// Validate ensures the lock is valid.
func (l *Lock) Validate() error {
	if l.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := l.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	// Any unlock time is acceptable. A value in the past means the lock is
	// claimable right away.
	return l.UnlockTime.Validate()
}

// Validate ensures the claim event is valid.
func (e *ClaimEvent) Validate() error {
	if err := e.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if e.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := e.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	return e.ClaimedAt.Validate()
}

// NewLockBucket returns the bucket keeping active locks, keyed by
// sponsor, recipient and ticker.
func NewLockBucket() orm.ModelBucket {
	return orm.NewModelBucket(LockBucketName)
}

// NewClaimBucket returns the bucket keeping the append-only claim logs,
// keyed by registry and sequence number.
func NewClaimBucket() orm.ModelBucket {
	return orm.NewModelBucket(ClaimBucketName)
}

// lockKey builds the primary key of a lock. Sponsor and recipient have a
// fixed length, so the variable length ticker can be appended last without
// ambiguity.
func lockKey(sponsor, recipient timevault.Address, ticker string) []byte {
	key := make([]byte, 0, len(sponsor)+len(recipient)+len(ticker))
	key = append(key, sponsor...)
	key = append(key, recipient...)
	key = append(key, ticker...)
	return key
}

// RegistryKey identifies one (sponsor, asset kind) registry. It prefixes
// all claim log entries of that registry and names its sequence. The ticker
// is terminated with a byte that cannot occur in a currency code, so a
// three letter ticker can never prefix-match a four letter one.
func RegistryKey(sponsor timevault.Address, ticker string) []byte {
	key := make([]byte, 0, len(sponsor)+len(ticker)+1)
	key = append(key, sponsor...)
	key = append(key, ticker...)
	key = append(key, '*')
	return key
}

// RegistryCondition identifies the account holding the escrowed funds of
// one (sponsor, asset kind) registry.
func RegistryCondition(sponsor timevault.Address, ticker string) timevault.Condition {
	return timevault.NewCondition("vault", "lock", RegistryKey(sponsor, ticker))
}

// RegistryAddress returns the address holding the escrowed funds of one
// (sponsor, asset kind) registry.
func RegistryAddress(sponsor timevault.Address, ticker string) timevault.Address {
	return RegistryCondition(sponsor, ticker).Address()
}

// claimSeq returns the sequence numbering claim events of one registry.
func claimSeq(sponsor timevault.Address, ticker string) orm.Sequence {
	return orm.NewSequence(ClaimBucketName, string(RegistryKey(sponsor, ticker)))
}
