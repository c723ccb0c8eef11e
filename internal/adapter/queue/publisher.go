package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mybayani/emergency-backend/internal/config"
	"github.com/mybayani/emergency-backend/internal/domain"
)

var (
	// ErrBufferFull is returned when events arrive faster than the broker takes them.
	ErrBufferFull = errors.New("amqp: publish buffer full")
	// ErrPublisherClosed is returned after Close.
	ErrPublisherClosed = errors.New("amqp: publisher closed")
)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type connectFunc func(ctx context.Context) (amqpChannel, io.Closer, error)

// Publisher sends call events to a durable queue from a background worker.
// PublishCallPlaced only enqueues, so callers never wait on the broker.
// A nil *Publisher drops events silently.
type Publisher struct {
	queue          string
	publishTimeout time.Duration
	connect        connectFunc
	log            *slog.Logger

	mu     sync.RWMutex
	closed bool
	events chan CallPlacedEvent
	done   chan struct{}

	// Owned by the worker goroutine.
	ch   amqpChannel
	conn io.Closer
}

// NewPublisher starts a publisher for the call queue. It returns nil when
// the broker is disabled.
func NewPublisher(cfg config.BrokerConfig, logger *slog.Logger) *Publisher {
	if !cfg.Enabled() {
		return nil
	}
	return newPublisher(cfg, dialQueue(cfg.URL, cfg.CallQueue, cfg.DialTimeout), logger)
}

func newPublisher(cfg config.BrokerConfig, connect connectFunc, logger *slog.Logger) *Publisher {
	size := cfg.BufferSize
	if size <= 0 {
		size = 1
	}
	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	p := &Publisher{
		queue:          cfg.CallQueue,
		publishTimeout: timeout,
		connect:        connect,
		log:            logger.With("adapter", "amqp"),
		events:         make(chan CallPlacedEvent, size),
		done:           make(chan struct{}),
	}
	go p.run()
	return p
}

// PublishCallPlaced queues the call for publishing. It never blocks: a full
// buffer returns ErrBufferFull and the event is dropped.
func (p *Publisher) PublishCallPlaced(_ context.Context, c domain.Call) error {
	if p == nil {
		return nil
	}

	ev := CallPlacedEvent{
		CallID:   c.ID,
		Person:   c.Person,
		Service:  c.Service,
		Number:   c.Number,
		PlacedAt: c.CreatedAt,
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}
	select {
	case p.events <- ev:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close stops accepting events, flushes the buffer and closes the
// connection. Once the broker is unreachable, the remaining events are dropped.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.events)
	}
	p.mu.Unlock()

	<-p.done
	return nil
}

func (p *Publisher) run() {
	defer close(p.done)
	defer p.reset()

	for ev := range p.events {
		err := p.send(ev)
		if err == nil {
			continue
		}
		p.log.Warn("call event dropped",
			slog.String("call_id", ev.CallID),
			slog.String("error", err.Error()),
		)
		if p.isClosed() {
			dropped := 0
			for range p.events {
				dropped++
			}
			if dropped > 0 {
				p.log.Warn("call events dropped on shutdown", slog.Int("count", dropped))
			}
			return
		}
	}
}

func (p *Publisher) send(ev CallPlacedEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), p.publishTimeout)
	defer cancel()

	if p.ch == nil || p.ch.IsClosed() {
		p.reset()
		ch, conn, err := p.connect(ctx)
		if err != nil {
			return err
		}
		p.ch, p.conn = ch, conn
		p.log.Info("amqp publisher connected", slog.String("queue", p.queue))
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("amqp: marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("amqp: publish: %w", err)
	}
	return nil
}

func (p *Publisher) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// dialQueue connects to the broker and declares the durable call queue.
func dialQueue(url, queue string, timeout time.Duration) connectFunc {
	return func(ctx context.Context) (amqpChannel, io.Closer, error) {
		conn, err := dial(ctx, url, timeout)
		if err != nil {
			return nil, nil, err
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("amqp: channel open: %w", err)
		}
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, fmt.Errorf("amqp: queue declare: %w", err)
		}
		return ch, conn, nil
	}
}
