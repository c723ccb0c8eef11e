// Package queue carries call events over RabbitMQ.
package queue

import "time"

// CallPlacedEvent is published after a call is logged. It holds enough
// of the call for downstream auditing without reading the document store.
type CallPlacedEvent struct {
	CallID   string    `json:"call_id"`
	Person   string    `json:"person"`
	Service  string    `json:"service"`
	Number   string    `json:"number"`
	PlacedAt time.Time `json:"placed_at"`
}
