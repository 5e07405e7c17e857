package bookstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// setupTestDB connects to $MONGODB_URI (default localhost) and returns a
// catalog in a throwaway database. Tests are skipped when no writable server
// is reachable.
func setupTestDB(t *testing.T) (context.Context, *Catalog, func()) {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx := context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerSelectionTimeout(2 * time.Second))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		t.Skipf("MongoDB not available: %v", err)
	}

	dbName := fmt.Sprintf("bookstore_test_%d", time.Now().UnixNano())
	store := NewStore(client, dbName)
	db := store.Database()

	probe := db.Collection("_bookstore_auth_check")
	if _, err := probe.InsertOne(ctx, bson.D{{Key: "test", Value: true}}); err != nil {
		_ = db.Drop(ctx)
		_ = store.Close(ctx)
		t.Skipf("MongoDB not writable (auth required?): %v", err)
	}
	_ = probe.Drop(ctx)

	cleanup := func() {
		_ = db.Drop(ctx)
		_ = store.Close(ctx)
	}
	return ctx, store.Catalog(), cleanup
}

// seedSample inserts SampleBooks into c and fails the test on error.
func seedSample(t *testing.T, ctx context.Context, c *Catalog) []Book {
	t.Helper()
	books := SampleBooks()
	if _, err := c.InsertMany(ctx, books); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return books
}

func intPtr(n int) *int { return &n }
