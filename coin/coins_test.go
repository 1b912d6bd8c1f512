package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineCoins(t *testing.T) {
	// duplicates are merged and the result is sorted by ticker
	coins, err := CombineCoins(
		NewCoin(10, 0, "DIN"),
		NewCoin(1, 0, "ABC"),
		NewCoin(5, 0, "DIN"),
	)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "ABC", coins[0].Ticker)
	assert.Equal(t, "DIN", coins[1].Ticker)
	assert.True(t, coins.Contains(NewCoin(15, 0, "DIN")))

	// coins that cancel out disappear from the set
	coins, err = CombineCoins(
		NewCoin(3, 0, "ABC"),
		NewCoin(-3, 0, "ABC"),
	)
	require.NoError(t, err)
	assert.True(t, coins.IsEmpty())
}

func TestCoinsAddSubtract(t *testing.T) {
	var coins Coins

	coins, err := coins.Add(NewCoin(7, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, coins.Contains(NewCoin(7, 0, "IOV")))
	assert.True(t, coins.IsPositive())

	// adding a zero value coin is a noop
	coins, err = coins.Add(NewCoin(0, 0, "IOV"))
	require.NoError(t, err)
	require.Len(t, coins, 1)

	coins, err = coins.Subtract(NewCoin(2, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, coins.Contains(NewCoin(5, 0, "IOV")))
	assert.False(t, coins.Contains(NewCoin(6, 0, "IOV")))

	// subtracting everything removes the coin entirely
	coins, err = coins.Subtract(NewCoin(5, 0, "IOV"))
	require.NoError(t, err)
	assert.True(t, coins.IsEmpty())

	// the set may go negative
	coins, err = coins.Subtract(NewCoin(1, 0, "IOV"))
	require.NoError(t, err)
	assert.False(t, coins.IsNonNegative())
}

func TestCoinsContains(t *testing.T) {
	coins, err := CombineCoins(NewCoin(2, 0, "ABC"), NewCoin(3, 0, "DIN"))
	require.NoError(t, err)

	assert.True(t, coins.Contains(NewCoin(2, 0, "ABC")))
	assert.True(t, coins.Contains(NewCoin(1, 500, "ABC")))
	assert.False(t, coins.Contains(NewCoin(2, 1, "ABC")))
	assert.False(t, coins.Contains(NewCoin(1, 0, "XYZ")))
}

func TestCoinsValidate(t *testing.T) {
	valid, err := CombineCoins(NewCoin(1, 0, "ABC"), NewCoin(2, 0, "DIN"))
	require.NoError(t, err)
	assert.NoError(t, valid.Validate())

	// unsorted sets are invalid
	unsorted := Coins{NewCoinp(1, 0, "DIN"), NewCoinp(1, 0, "ABC")}
	assert.Error(t, unsorted.Validate())

	// zero coins must not be present
	withZero := Coins{NewCoinp(0, 0, "ABC")}
	assert.Error(t, withZero.Validate())
}
