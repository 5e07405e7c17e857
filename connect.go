package bookstore

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// DatabaseName is the fixed database the walkthrough operates on.
	DatabaseName = "plp_bookstore"

	// CollectionName is the fixed collection holding Book documents.
	CollectionName = "books"
)

// ConnectOptions configures Connect.
type ConnectOptions struct {
	// AppName is reported to the server in the handshake. Optional.
	AppName string

	// Database overrides DatabaseName. Used by tests to isolate runs.
	Database string
}

// Store is an open connection to the document database. It is a scoped
// resource: callers own it and must Close it on every exit path.
type Store struct {
	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
	schema *Schema
}

// Connect establishes a connection to MongoDB, verifies it with a ping, and
// selects the bookstore database. A failed ping disconnects the client before
// returning. Errors are not retried.
func Connect(ctx context.Context, uri string, opts ...ConnectOptions) (*Store, error) {
	if uri == "" {
		return nil, ErrMissingURI
	}

	var opt ConnectOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	clientOpts := options.Client().ApplyURI(uri)
	if opt.AppName != "" {
		clientOpts.SetAppName(opt.AppName)
	}
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("bookstore: failed to connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("bookstore: failed to ping: %w", err)
	}

	dbName := opt.Database
	if dbName == "" {
		dbName = DatabaseName
	}

	return NewStore(client, dbName), nil
}

// NewStore wraps an already connected client. Close disconnects it.
func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{
		client: client,
		db:     client.Database(dbName),
		schema: BookSchema(),
	}
}

// Database returns the selected database handle, or nil after Close.
func (s *Store) Database() *mongo.Database {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db
}

// Catalog returns a Catalog bound to the books collection.
func (s *Store) Catalog() *Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return &Catalog{schema: s.schema}
	}
	return newCatalog(s.db.Collection(CollectionName), s.schema)
}

// Close disconnects the client. It is safe to call more than once.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.db = nil
	s.mu.Unlock()

	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("bookstore: failed to disconnect: %w", err)
	}
	return nil
}
