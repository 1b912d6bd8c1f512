package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/timevault/errors"
)

func TestCompareCoin(t *testing.T) {
	cases := []struct {
		a      Coin
		b      Coin
		expect int
	}{
		{NewCoin(20, 1234, "ABC"), NewCoin(19, 999999999, "ABC"), 1},
		{NewCoin(0, -2, "FOO"), NewCoin(0, 1, "FOO"), -1},
		{NewCoin(-4, -2456, "BAR"), NewCoin(-4, -4567, "BAR"), 1},
		{NewCoin(2, 1000, "XYZ"), NewCoin(2, 1000, "XYZ"), 0},
	}

	for idx, tc := range cases {
		assert.Equal(t, tc.expect, tc.a.Compare(tc.b), "%d", idx)
	}
}

func TestValidCoin(t *testing.T) {
	cases := map[string]struct {
		coin            Coin
		wantValid       bool
		normalized      Coin
		normalizedValid bool
	}{
		"interesting — valid and normalized": {
			coin:            NewCoin(0, -100, "DIN"),
			wantValid:       true,
			normalized:      NewCoin(0, -100, "DIN"),
			normalizedValid: true,
		},
		"invalid ticker": {
			coin:      NewCoin(1, 0, "de"),
			wantValid: false,
		},
		"make sure issuer is maintained throughout": {
			coin:            NewCoin(2, -1500500500, "ABC"),
			wantValid:       false,
			normalized:      NewCoin(0, 499499500, "ABC"),
			normalizedValid: true,
		},
		"from negative to positive rollover": {
			coin:            NewCoin(-1, 1777888111, "ABC"),
			wantValid:       false,
			normalized:      NewCoin(0, 777888111, "ABC"),
			normalizedValid: true,
		},
		"overflow": {
			coin:      NewCoin(MaxInt+3, 0, "DIN"),
			wantValid: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
			if tc.normalizedValid {
				nrm, err := tc.coin.normalize()
				require.NoError(t, err)
				assert.True(t, tc.normalized.Equals(nrm))
				assert.NoError(t, nrm.Validate())
			}
		})
	}
}

func TestAddCoin(t *testing.T) {
	base := NewCoin(17, 2345566, "DEF")
	cases := map[string]struct {
		a, b    Coin
		wantRes Coin
		wantErr *errors.Error
	}{
		"plain addition": {
			a:       base,
			b:       base,
			wantRes: NewCoin(34, 4691132, "DEF"),
		},
		"wrong currency": {
			a:       base,
			b:       NewCoin(1, 2, "DEFG"),
			wantErr: errors.ErrCurrency,
		},
		"negative coins": {
			a:       base,
			b:       base.Negative(),
			wantRes: NewCoin(0, 0, "DEF"),
		},
		"fractional carry": {
			a:       NewCoin(1, 999999999, "ABC"),
			b:       NewCoin(0, 1, "ABC"),
			wantRes: NewCoin(2, 0, "ABC"),
		},
		"zero coin with no ticker has no influence": {
			a:       Coin{},
			b:       base,
			wantRes: base,
		},
		"overflow": {
			a:       NewCoin(MaxInt, 0, "DEF"),
			b:       NewCoin(1, 0, "DEF"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			res, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.wantRes.Equals(res), "got %s", res)
		})
	}
}

func TestCoinDivide(t *testing.T) {
	cases := map[string]struct {
		total    Coin
		pieces   int64
		wantOne  Coin
		wantRest Coin
		wantErr  *errors.Error
	}{
		"split into one piece": {
			total:    NewCoin(7, 11, "BTC"),
			pieces:   1,
			wantOne:  NewCoin(7, 11, "BTC"),
			wantRest: NewCoin(0, 0, "BTC"),
		},
		"split into two pieces with no rest": {
			total:    NewCoin(4, 0, "BTC"),
			pieces:   2,
			wantOne:  NewCoin(2, 0, "BTC"),
			wantRest: NewCoin(0, 0, "BTC"),
		},
		"split into three pieces with fractional leftover": {
			total:    NewCoin(4, 0, "BTC"),
			pieces:   3,
			wantOne:  NewCoin(1, 333333333, "BTC"),
			wantRest: NewCoin(0, 1, "BTC"),
		},
		"zero pieces": {
			total:   NewCoin(4, 0, "BTC"),
			pieces:  0,
			wantErr: errors.ErrInvalidInput,
		},
		"negative pieces": {
			total:   NewCoin(4, 0, "BTC"),
			pieces:  -1,
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			one, rest, err := tc.total.Divide(tc.pieces)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.wantOne.Equals(one), "got %s", one)
			assert.True(t, tc.wantRest.Equals(rest), "got %s", rest)

			// value must be conserved: one*pieces + rest == total
			sum := rest
			for i := int64(0); i < tc.pieces; i++ {
				sum, err = sum.Add(one)
				require.NoError(t, err)
			}
			assert.True(t, tc.total.Equals(sum), "split is lossy: %s", sum)
		})
	}
}

func TestCoinString(t *testing.T) {
	cases := map[string]struct {
		coin Coin
		want string
	}{
		"whole only":        {NewCoin(12, 0, "FOO"), "12 FOO"},
		"with fraction":     {NewCoin(1, 500000000, "FOO"), "1.5 FOO"},
		"tiny fraction":     {NewCoin(0, 1, "FOO"), "0.000000001 FOO"},
		"negative":          {NewCoin(-2, -250000000, "FOO"), "-2.25 FOO"},
		"no ticker":         {NewCoin(3, 0, ""), "3"},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coin.String())
		})
	}
}
