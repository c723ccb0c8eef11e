package testhelper

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// SeedContact inserts a hotline contact document and returns its hex id.
// Contacts are curated directly in the store, so the app has no write path.
// Empty classification and location are left out of the document.
func SeedContact(t *testing.T, col *mongo.Collection, c domain.Contact) string {
	t.Helper()

	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":     id,
		"name":    c.Name,
		"service": c.Service,
		"number":  c.Number,
	}
	if c.Classification != "" {
		doc["classification"] = c.Classification
	}
	if c.Location != "" {
		doc["location"] = c.Location
	}

	if _, err := col.InsertOne(context.Background(), doc); err != nil {
		t.Fatalf("testhelper: SeedContact insert: %v", err)
	}
	return id.Hex()
}
