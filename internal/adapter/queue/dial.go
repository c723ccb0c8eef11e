package queue

import (
	"context"
	"fmt"
	"net"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultDialTimeout = 3 * time.Second

// dial opens a broker connection whose TCP connect and AMQP handshake are
// both bounded by timeout and by ctx. amqp.Dial alone waits up to 30s on a
// peer that accepts but never speaks AMQP.
func dial(ctx context.Context, url string, timeout time.Duration) (*amqp.Connection, error) {
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			d := net.Dialer{Timeout: timeout}
			c, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// The library clears this deadline once the handshake completes.
			deadline := time.Now().Add(timeout)
			if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
				deadline = dl
			}
			if err := c.SetDeadline(deadline); err != nil {
				_ = c.Close()
				return nil, err
			}
			return c, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("amqp: dial: %w", err)
	}
	return conn, nil
}
