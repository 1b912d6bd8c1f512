package feed

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/coin"
	"github.com/iov-one/timevault/store"
	"github.com/iov-one/timevault/x/cash"
	"github.com/iov-one/timevault/x/vault"
)

// memPublisher collects published messages. It can be set to fail after a
// number of deliveries.
type memPublisher struct {
	messages  [][]byte
	failAfter int
}

func (p *memPublisher) Publish(subject string, data []byte) error {
	if p.failAfter > 0 && len(p.messages) >= p.failAfter {
		return context.DeadlineExceeded
	}
	p.messages = append(p.messages, data)
	return nil
}

func claimOnce(t *testing.T, db timevault.CacheableKVStore, cashctrl cash.BaseController, ctrl *vault.Controller, sponsor, recipient timevault.Address, value int64, at time.Time) {
	t.Helper()
	amount := coin.NewCoin(value, 0, "IOV")
	require.NoError(t, cashctrl.IssueCoins(db, sponsor, amount))
	require.NoError(t, ctrl.Deposit(db, sponsor, recipient, amount, timevault.AsUnixTime(at)))
	ctx := timevault.WithBlockTime(context.Background(), at)
	require.NoError(t, ctrl.Claim(ctx, db, recipient, sponsor, "IOV"))
}

func TestForward(t *testing.T) {
	db := store.MemStore()
	cashctrl := cash.NewController(nil)
	ctrl := vault.NewController(cashctrl)

	sponsor := timevault.NewAddress([]byte("sponsor"))
	recipient := timevault.NewAddress([]byte("recipient"))
	now := time.Now()

	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 11, now)
	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 22, now.Add(time.Minute))

	pub := &memPublisher{}
	fwd := NewForwarder(pub, "timevault.claims")

	n, err := fwd.Forward(db, sponsor, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, pub.messages, 2)

	var msg Message
	require.NoError(t, json.Unmarshal(pub.messages[0], &msg))
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, sponsor.String(), msg.Sponsor)
	assert.Equal(t, "IOV", msg.Ticker)
	assert.Equal(t, recipient.String(), msg.Recipient)
	assert.Equal(t, "11 IOV", msg.Amount)
	assert.Equal(t, now.Unix(), msg.ClaimedAt)

	require.NoError(t, json.Unmarshal(pub.messages[1], &msg))
	assert.Equal(t, "22 IOV", msg.Amount)

	// nothing new means nothing published
	n, err = fwd.Forward(db, sponsor, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, pub.messages, 2)

	// a later claim is picked up by the next run
	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 33, now.Add(2*time.Minute))
	n, err = fwd.Forward(db, sponsor, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, pub.messages, 3)
	require.NoError(t, json.Unmarshal(pub.messages[2], &msg))
	assert.Equal(t, "33 IOV", msg.Amount)
}

func TestForwardRetriesAfterFailure(t *testing.T) {
	db := store.MemStore()
	cashctrl := cash.NewController(nil)
	ctrl := vault.NewController(cashctrl)

	sponsor := timevault.NewAddress([]byte("sponsor"))
	recipient := timevault.NewAddress([]byte("recipient"))
	now := time.Now()

	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 11, now)
	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 22, now.Add(time.Minute))

	pub := &memPublisher{failAfter: 1}
	fwd := NewForwarder(pub, "timevault.claims")

	// the first run delivers one event and fails on the second
	n, err := fwd.Forward(db, sponsor, "IOV")
	assert.Error(t, err)
	assert.Equal(t, 1, n)

	// the retry continues from the undelivered event, without duplicates
	pub.failAfter = 0
	n, err = fwd.Forward(db, sponsor, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, pub.messages, 2)

	var msg Message
	require.NoError(t, json.Unmarshal(pub.messages[0], &msg))
	assert.Equal(t, "11 IOV", msg.Amount)
	require.NoError(t, json.Unmarshal(pub.messages[1], &msg))
	assert.Equal(t, "22 IOV", msg.Amount)
}

func TestForwardDistinctRegistries(t *testing.T) {
	db := store.MemStore()
	cashctrl := cash.NewController(nil)
	ctrl := vault.NewController(cashctrl)

	sponsor := timevault.NewAddress([]byte("sponsor"))
	other := timevault.NewAddress([]byte("other"))
	recipient := timevault.NewAddress([]byte("recipient"))
	now := time.Now()

	claimOnce(t, db, cashctrl, ctrl, sponsor, recipient, 11, now)
	claimOnce(t, db, cashctrl, ctrl, other, recipient, 22, now)

	pub := &memPublisher{}
	fwd := NewForwarder(pub, "timevault.claims")

	// each registry has its own log and its own cursor
	n, err := fwd.Forward(db, sponsor, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = fwd.Forward(db, other, "IOV")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
