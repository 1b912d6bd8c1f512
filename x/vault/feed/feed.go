// Package feed forwards claim events of a registry to external consumers.
//
// The claim log is append only, so a forwarder only needs to remember the
// sequence number of the last event it delivered. The cursor is kept in the
// same store as the log and advances together with every published batch.
package feed

import (
	"encoding/binary"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/iov-one/timevault"
	"github.com/iov-one/timevault/errors"
	"github.com/iov-one/timevault/metrics"
	"github.com/iov-one/timevault/orm"
	"github.com/iov-one/timevault/x/vault"
)

// Publisher delivers a serialized claim event to an external consumer.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Message is the JSON payload published for every claim event.
type Message struct {
	ID        string `json:"id"`
	Sponsor   string `json:"sponsor"`
	Ticker    string `json:"ticker"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	ClaimedAt int64  `json:"claimed_at"`
}

// Forwarder publishes new claim events to a Publisher. It is not safe for
// concurrent use on the same registry.
type Forwarder struct {
	pub     Publisher
	subject string
	claims  orm.ModelBucket
}

// NewForwarder returns a forwarder publishing claim events on given subject.
func NewForwarder(pub Publisher, subject string) *Forwarder {
	return &Forwarder{
		pub:     pub,
		subject: subject,
		claims:  vault.NewClaimBucket(),
	}
}

// Forward publishes all claim events of given registry appended since the
// previous call and returns how many were delivered. Events are published in
// log order. If publishing fails mid batch, the cursor is not advanced past
// the last delivered event, so the next call retries from there.
func (f *Forwarder) Forward(db timevault.KVStore, sponsor timevault.Address, ticker string) (int, error) {
	registry := vault.RegistryKey(sponsor, ticker)
	cursor, err := loadCursor(db, registry)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load cursor")
	}

	var published int
	err = f.claims.Walk(db, registry, func(key, value []byte) error {
		seq := orm.DecodeSequence(key[len(registry):])
		if seq <= cursor {
			return nil
		}
		var event vault.ClaimEvent
		if err := event.Unmarshal(value); err != nil {
			return errors.Wrap(err, "cannot unmarshal claim event")
		}
		msg := Message{
			ID:        uuid.NewString(),
			Sponsor:   sponsor.String(),
			Ticker:    ticker,
			Recipient: event.Recipient.String(),
			Amount:    event.Amount.String(),
			ClaimedAt: int64(event.ClaimedAt),
		}
		raw, err := json.Marshal(msg)
		if err != nil {
			return errors.Wrap(err, "cannot serialize message")
		}
		if err := f.pub.Publish(f.subject, raw); err != nil {
			return errors.Wrapf(err, "cannot publish event %d", seq)
		}
		cursor = seq
		published++
		metrics.FeedPublishTotal.Inc()
		return nil
	})
	if published > 0 {
		if serr := saveCursor(db, registry, cursor); serr != nil {
			return published, errors.Wrap(serr, "cannot save cursor")
		}
	}
	return published, err
}

// cursorKey follows the same naming pattern as sequence keys.
func cursorKey(registry []byte) []byte {
	return append([]byte("_f."+vault.ClaimBucketName+":"), registry...)
}

func loadCursor(db timevault.ReadOnlyKVStore, registry []byte) (int64, error) {
	raw, err := db.Get(cursorKey(registry))
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func saveCursor(db timevault.KVStore, registry []byte, cursor int64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(cursor))
	return db.Set(cursorKey(registry), raw)
}
