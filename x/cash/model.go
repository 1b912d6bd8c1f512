package cash

import (
	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/coin"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Set)(nil)

// Validate requires that all coins are in alphabetical order and that each
// coin is valid in its own right.
func (s *Set) Validate() error {
	return coin.Coins(s.GetCoins()).Validate()
}

// Wallet is a Set with an address attached. It is the object we pass around
// in our code when manipulating balances.
type Wallet struct {
	address timevault.Address
	set     *Set
}

// NewWallet creates an empty wallet with this address.
func NewWallet(addr timevault.Address) *Wallet {
	return &Wallet{
		address: addr,
		set:     new(Set),
	}
}

// WalletWith creates a wallet with given coins. It is meant to be used in
// tests and genesis setup, so it panics on an invalid set.
func WalletWith(addr timevault.Address, coins ...*coin.Coin) *Wallet {
	w := NewWallet(addr)
	for _, c := range coins {
		if err := w.Add(*c); err != nil {
			panic(err)
		}
	}
	return w
}

// Address returns the address this wallet belongs to.
func (w *Wallet) Address() timevault.Address {
	return w.address
}

// Coins returns the coins stored in the wallet
func (w *Wallet) Coins() coin.Coins {
	return coin.Coins(w.set.GetCoins())
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.set.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

// Validate makes sure the address is proper and delegates to the coin set
// validation.
func (w *Wallet) Validate() error {
	if err := w.address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return w.set.Validate()
}

// Bucket is a type-safe wrapper around orm.ModelBucket keeping wallets
// indexed by address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName),
	}
}

// Get loads the wallet stored under given address. A nil wallet without an
// error is returned when the address holds no wallet yet.
func (b Bucket) Get(db orm.ReadOnlyKVStore, addr timevault.Address) (*Wallet, error) {
	var set Set
	switch err := b.One(db, addr, &set); {
	case err == nil:
		return &Wallet{address: addr, set: &set}, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// GetOrCreate loads the wallet stored under given address, creating an empty
// one if none exists. The new wallet is not persisted until saved.
func (b Bucket) GetOrCreate(db orm.ReadOnlyKVStore, addr timevault.Address) (*Wallet, error) {
	wallet, err := b.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(addr)
	}
	return wallet, nil
}

// Save persists the wallet under its address.
func (b Bucket) Save(db orm.KVStore, w *Wallet) error {
	if err := w.address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	return b.Put(db, w.address, w.set)
}
