package feed

import (
	nats "github.com/nats-io/nats.go"
)

// NATSPublisher implements Publisher over a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

var _ Publisher = NATSPublisher{}

// NewNATSPublisher returns a publisher using the provided connection.
func NewNATSPublisher(conn *nats.Conn) NATSPublisher {
	return NATSPublisher{conn: conn}
}

// Publish implements Publisher.Publish.
func (p NATSPublisher) Publish(subject string, data []byte) error {
	return p.conn.Publish(subject, data)
}
