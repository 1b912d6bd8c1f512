package timevault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTime(t *testing.T) {
	now := time.Now()
	unow := AsUnixTime(now)

	assert.Equal(t, now.Unix(), int64(unow))
	assert.Equal(t, now.Unix(), unow.Time().Unix())
	assert.Equal(t, unow+60, unow.Add(time.Minute))
	assert.NoError(t, unow.Validate())
	assert.Error(t, UnixTime(-1).Validate())
	assert.True(t, UnixTime(0).IsZero())
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	assert.True(t, IsExpired(ctx, AsUnixTime(now.Add(-time.Minute))))
	assert.False(t, IsExpired(ctx, AsUnixTime(now.Add(time.Minute))))

	// a deadline that equals the current time is reached
	assert.True(t, IsExpired(ctx, AsUnixTime(now)))
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	assert.Panics(t, func() {
		IsExpired(context.Background(), AsUnixTime(time.Now()))
	})
}

func TestBlockTime(t *testing.T) {
	_, ok := BlockTime(context.Background())
	assert.False(t, ok)

	now := time.Now()
	got, ok := BlockTime(WithBlockTime(context.Background(), now))
	require.True(t, ok)
	assert.Equal(t, now, got)
}
