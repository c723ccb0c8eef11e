// Package contact implements read access to the curated hotline contacts
// kept on the document store.
package contact

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongoadapter "github.com/mybayani/emergency-backend/internal/adapter/mongo"
	"github.com/mybayani/emergency-backend/internal/domain"
)

// Repo reads contact documents. Contacts are curated directly in the store.
type Repo struct {
	col *mongo.Collection
}

// New creates a contact repository over the given collection.
func New(col *mongo.Collection) *Repo {
	return &Repo{col: col}
}

type contactDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Service        string             `bson:"service"`
	Classification string             `bson:"classification,omitempty"`
	Number         string             `bson:"number"`
	Location       string             `bson:"location,omitempty"`
}

// List returns every contact ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Contact, error) {
	cur, err := r.col.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, mongoadapter.MapError(err, "contacts", nil)
	}
	defer cur.Close(ctx)

	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongoadapter.MapError(err, "contacts", nil)
	}

	out := make([]domain.Contact, len(docs))
	for i, d := range docs {
		out[i] = toDomain(d)
	}
	return out, nil
}

// GetByID returns a contact by its hex object id.
// A malformed id is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongoadapter.MapError(mongo.ErrNoDocuments, "contact", id)
	}

	var doc contactDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mongoadapter.MapError(err, "contact", id)
	}

	c := toDomain(doc)
	return &c, nil
}

func toDomain(d contactDoc) domain.Contact {
	return domain.Contact{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Service:        d.Service,
		Classification: d.Classification,
		Number:         d.Number,
		Location:       d.Location,
	}
}
