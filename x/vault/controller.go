package vault

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/coin"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/metrics"
	"github.com/iov-one/timevault/orm"
	"github.com/iov-one/timevault/x/cash"
)

// Controller implements the time locked deposit registry. All mutating
// operations run on a cache wrap of the given store and are therefore
// applied either completely or not at all.
type Controller struct {
	cash   cash.Controller
	locks  orm.ModelBucket
	claims orm.ModelBucket
}

// NewController returns a controller keeping escrowed funds in wallets
// managed by the given cash controller.
func NewController(cashctrl cash.Controller) *Controller {
	return &Controller{
		cash:   cashctrl,
		locks:  NewLockBucket(),
		claims: NewClaimBucket(),
	}
}

// Deposit moves amount from the sponsor wallet into the registry escrow and
// records a lock claimable by recipient once unlockTime has passed. There
// can be at most one active lock per sponsor, recipient and asset kind. If
// such a lock already exists the call fails with ErrAlreadyLocked and no
// funds are moved.
func (c *Controller) Deposit(db timevault.CacheableKVStore, sponsor, recipient timevault.Address, amount coin.Coin, unlockTime timevault.UnixTime) error {
	if err := sponsor.Validate(); err != nil {
		return errors.Wrap(err, "sponsor")
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	cache := db.CacheWrap()
	defer cache.Discard()

	key := lockKey(sponsor, recipient, amount.Ticker)
	switch err := c.locks.Has(cache, key); {
	case err == nil:
		return errors.Wrapf(ErrAlreadyLocked, "sponsor %s, recipient %s, ticker %s", sponsor, recipient, amount.Ticker)
	case errors.ErrNotFound.Is(err):
		// All good.
	default:
		return errors.Wrap(err, "cannot check lock")
	}

	if err := c.cash.MoveCoins(cache, sponsor, RegistryAddress(sponsor, amount.Ticker), amount); err != nil {
		return errors.Wrap(err, "cannot escrow funds")
	}

	lock := Lock{
		Amount:     &amount,
		UnlockTime: unlockTime,
	}
	if err := c.locks.Put(cache, key, &lock); err != nil {
		return errors.Wrap(err, "cannot store lock")
	}

	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write cache")
	}
	metrics.DepositsTotal.Inc()
	metrics.ActiveLocks.Inc()
	return nil
}

// Claim releases the lock held for recipient by given sponsor and asset
// kind. The escrowed amount is credited to the recipient wallet, the lock is
// removed and a claim event is appended to the registry log. A lock can be
// claimed only once its unlock time has passed, and only once.
//
// The context must carry the transaction time as set by WithBlockTime.
func (c *Controller) Claim(ctx timevault.Context, db timevault.CacheableKVStore, recipient, sponsor timevault.Address, ticker string) error {
	if err := sponsor.Validate(); err != nil {
		return errors.Wrap(err, "sponsor")
	}
	if err := recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", ticker)
	}

	now, ok := timevault.BlockTime(ctx)
	if !ok {
		return errors.Wrap(errors.ErrHuman, "transaction time is not present in the context")
	}

	cache := db.CacheWrap()
	defer cache.Discard()

	key := lockKey(sponsor, recipient, ticker)
	var lock Lock
	if err := c.locks.One(cache, key, &lock); err != nil {
		return errors.Wrap(err, "cannot load lock")
	}
	if lock.UnlockTime.Time().After(now) {
		return errors.Wrapf(ErrNotYetUnlocked, "unlocks at %s", lock.UnlockTime)
	}

	if err := c.locks.Delete(cache, key); err != nil {
		return errors.Wrap(err, "cannot delete lock")
	}
	if err := c.cash.MoveCoins(cache, RegistryAddress(sponsor, ticker), recipient, *lock.Amount); err != nil {
		return errors.Wrap(err, "cannot release funds")
	}

	seq := claimSeq(sponsor, ticker)
	seqKey, err := seq.NextVal(cache)
	if err != nil {
		return errors.Wrap(err, "cannot acquire claim sequence")
	}
	event := ClaimEvent{
		Recipient: recipient,
		Amount:    lock.Amount,
		ClaimedAt: timevault.AsUnixTime(now),
	}
	if err := c.claims.Put(cache, append(RegistryKey(sponsor, ticker), seqKey...), &event); err != nil {
		return errors.Wrap(err, "cannot store claim event")
	}

	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "cannot write cache")
	}
	metrics.ClaimsTotal.Inc()
	metrics.ActiveLocks.Dec()
	return nil
}

// ActiveLock returns the lock currently held for given sponsor, recipient
// and asset kind, or ErrNotFound if there is none.
func (c *Controller) ActiveLock(db timevault.ReadOnlyKVStore, sponsor, recipient timevault.Address, ticker string) (*Lock, error) {
	var lock Lock
	if err := c.locks.One(db, lockKey(sponsor, recipient, ticker), &lock); err != nil {
		return nil, err
	}
	return &lock, nil
}

// Claims returns all claim events of one registry in the order they were
// appended.
func (c *Controller) Claims(db timevault.ReadOnlyKVStore, sponsor timevault.Address, ticker string) ([]ClaimEvent, error) {
	var events []ClaimEvent
	err := c.claims.Walk(db, RegistryKey(sponsor, ticker), func(_, value []byte) error {
		var event ClaimEvent
		if err := event.Unmarshal(value); err != nil {
			return errors.Wrap(err, "cannot unmarshal claim event")
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
