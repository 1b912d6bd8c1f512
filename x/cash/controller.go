package cash

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/coin"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

// CoinMover is the capability of debiting one wallet and crediting another
// as one operation.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to the
	// destination account. This operation is atomic.
	MoveCoins(db orm.KVStore, src, dest timevault.Address, amount coin.Coin) error
}

// Controller is the functionality needed by other packages to handle wallets.
type Controller interface {
	CoinMover

	// Balance returns the amounts stored in given wallet. A wallet that was
	// never funded reports an empty balance.
	Balance(db orm.ReadOnlyKVStore, addr timevault.Address) (coin.Coins, error)
}

// Guard decides whether a wallet may hold a given asset kind. It is
// consulted before any funds are credited.
type Guard interface {
	// CanHold returns nil if the address may hold coins of given ticker
	// and an error describing the reason otherwise.
	CanHold(db orm.ReadOnlyKVStore, addr timevault.Address, ticker string) error
}

// BaseController implements Controller over a wallet bucket, optionally
// consulting a Guard on every credit.
type BaseController struct {
	bucket Bucket
	guard  Guard
}

var _ Controller = BaseController{}

// NewController returns a controller crediting and debiting wallets in the
// default bucket. A nil guard allows every wallet to hold every asset kind.
func NewController(guard Guard) BaseController {
	return BaseController{
		bucket: NewBucket(),
		guard:  guard,
	}
}

// Balance returns the amount in the wallet. A missing wallet is reported as
// an empty balance.
func (c BaseController) Balance(db orm.ReadOnlyKVStore, addr timevault.Address) (coin.Coins, error) {
	wallet, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load wallet")
	}
	if wallet == nil {
		return nil, nil
	}
	return wallet.Coins(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails. If the configured guard refuses the destination, the move
// fails with ErrNotEligible and no wallet is changed.
func (c BaseController) MoveCoins(db orm.KVStore, src, dest timevault.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrInvalidAmount, "non-positive move: %s", amount)
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot load source wallet")
	}
	if sender == nil || !sender.Coins().Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "wallet %s does not hold %s", src, amount)
	}

	if c.guard != nil {
		if err := c.guard.CanHold(db, dest, amount.Ticker); err != nil {
			return errors.Wrapf(ErrNotEligible, "wallet %s: %v", dest, err)
		}
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot load destination wallet")
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db orm.KVStore, dest timevault.Address, amount coin.Coin) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
