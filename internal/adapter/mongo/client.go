// Package mongo holds the document store connection used for call logging
// and the curated hotline contacts.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mybayani/emergency-backend/internal/config"
)

// DB wraps a connected client and the application database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.MongoConfig
}

// Connect dials MongoDB, pings it for fail-fast validation, and ensures
// indexes on the configured collections. Index failures are logged only.
func Connect(ctx context.Context, cfg config.MongoConfig, logger *slog.Logger) (*DB, error) {
	start := time.Now()

	dctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(dctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	d := &DB{client: client, db: client.Database(cfg.Database), cfg: cfg}

	if err := d.ensureIndexes(dctx); err != nil {
		logger.WarnContext(ctx, "mongo index creation failed", slog.String("error", err.Error()))
	}

	logger.InfoContext(ctx, "mongo connected",
		slog.String("uri", RedactURI(cfg.URI)),
		slog.String("database", cfg.Database),
		slog.Duration("took", time.Since(start).Round(time.Millisecond)),
	)
	return d, nil
}

// Calls returns the call log collection.
func (d *DB) Calls() *mongo.Collection {
	return d.db.Collection(d.cfg.CallsCollection)
}

// Contacts returns the hotline contacts collection.
func (d *DB) Contacts() *mongo.Collection {
	return d.db.Collection(d.cfg.ContactsCollection)
}

// Ping checks that the server is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) ensureIndexes(ctx context.Context) error {
	var errs []string

	if _, err := d.Calls().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}); err != nil {
		errs = append(errs, "calls.created_at: "+err.Error())
	}
	if _, err := d.Contacts().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	}); err != nil {
		errs = append(errs, "contacts.name: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// RedactURI masks credentials in a connection string for logging.
func RedactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}
