package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mybayani/emergency-backend/internal/config"
)

// HandlerFunc processes one decoded call event.
type HandlerFunc func(ctx context.Context, ev CallPlacedEvent) error

// Consumer reads call events from the queue and hands them to a handler.
type Consumer struct {
	url         string
	queue       string
	prefetch    int
	dialTimeout time.Duration
	handle      HandlerFunc
	log         *slog.Logger

	maxBackoff time.Duration
}

// NewConsumer creates a Consumer for the configured call queue.
func NewConsumer(cfg config.BrokerConfig, handle HandlerFunc, logger *slog.Logger) *Consumer {
	return &Consumer{
		url:         cfg.URL,
		queue:       cfg.CallQueue,
		prefetch:    cfg.Prefetch,
		dialTimeout: cfg.DialTimeout,
		handle:      handle,
		log:         logger.With("component", "call-consumer"),
		maxBackoff:  30 * time.Second,
	}
}

// Run connects and consumes until ctx is cancelled, reconnecting with
// exponential backoff when the broker is unreachable or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		conn, err := dial(ctx, c.url, c.dialTimeout)
		if err != nil {
			c.log.WarnContext(ctx, "dial failed",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", backoff),
			)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, c.maxBackoff)
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.WarnContext(ctx, "consume loop ended, reconnecting", slog.String("error", err.Error()))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.log.WarnContext(ctx, "set qos failed", slog.String("error", err.Error()))
	}
	if _, err := ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	c.log.InfoContext(ctx, "consuming", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.process(ctx, d)
		}
	}
}

// process acks handled messages and rejects failures without requeue
// so a poison message cannot loop.
func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	var ev CallPlacedEvent
	err := json.Unmarshal(d.Body, &ev)
	if err == nil {
		err = c.handle(ctx, ev)
	} else {
		err = fmt.Errorf("unmarshal: %w", err)
	}

	if err != nil {
		c.log.ErrorContext(ctx, "handle message failed", slog.String("error", err.Error()))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
