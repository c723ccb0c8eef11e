package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mybayani/emergency-backend/internal/adapter/queue"
)

// NewCallAuditHandler returns a queue handler that records each placed
// call as one structured log line. Events without a call id or number are
// rejected so the broker can dead-letter them.
func NewCallAuditHandler(audit *slog.Logger) queue.HandlerFunc {
	return func(ctx context.Context, ev queue.CallPlacedEvent) error {
		if ev.CallID == "" || strings.TrimSpace(ev.Number) == "" {
			return errors.New("call event missing call_id or number")
		}
		audit.LogAttrs(ctx, slog.LevelInfo, "call.placed",
			slog.String("call_id", ev.CallID),
			slog.String("person", ev.Person),
			slog.String("service", ev.Service),
			slog.String("number", ev.Number),
			slog.Time("placed_at", ev.PlacedAt),
		)
		return nil
	}
}
