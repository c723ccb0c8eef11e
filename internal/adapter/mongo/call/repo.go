// Package call implements the emergency call log on the document store.
package call

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	mongoadapter "github.com/mybayani/emergency-backend/internal/adapter/mongo"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo writes call documents.
type Repo struct {
	col *mongo.Collection
	now func() time.Time
}

// New creates a call repository over the given collection.
func New(col *mongo.Collection) *Repo {
	return &Repo{col: col, now: time.Now}
}

type callDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Person    string             `bson:"person"`
	Service   string             `bson:"service"`
	Number    string             `bson:"number"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Insert stores a call and returns the created document.
func (r *Repo) Insert(ctx context.Context, c domain.Call) (*domain.Call, error) {
	doc := callDoc{
		ID:        primitive.NewObjectID(),
		Person:    c.Person,
		Service:   c.Service,
		Number:    c.Number,
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, mongoadapter.MapError(err, "call", nil)
	}

	return &domain.Call{
		ID:        doc.ID.Hex(),
		Person:    doc.Person,
		Service:   doc.Service,
		Number:    doc.Number,
		CreatedAt: doc.CreatedAt,
	}, nil
}
