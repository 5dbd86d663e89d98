// store_test.go provides a shared test database helper for the store
// integration tests. Tests are skipped if MongoDB is not available.
package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testMongoURI returns the MongoDB connection string for testing, with a
// default matching a local development instance.
func testMongoURI() string {
	if v := os.Getenv("MONGO_URI"); v != "" {
		return v
	}
	return "mongodb://localhost:27017"
}

// testDB connects to the test database, skipping the test when MongoDB is
// unreachable. The connection is closed when the test finishes.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(testMongoURI()))
	if err != nil {
		t.Skipf("skipping integration test: cannot create mongo client: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping integration test: mongo not reachable: %v", err)
	}

	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("kalemci_test")
}
