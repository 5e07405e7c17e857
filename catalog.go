package bookstore

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// FindOptions configures Find and FindSummaries.
type FindOptions struct {
	Sort       bson.D
	Skip       int64
	Limit      int64
	Projection bson.D
}

// PageOptions returns options for the 1-based page of size limit, sorted by
// _id so that consecutive pages are disjoint. Pages below 1 are treated as 1.
func PageOptions(page, limit int64) FindOptions {
	if page < 1 {
		page = 1
	}
	return FindOptions{
		Sort:  bson.D{{Key: "_id", Value: 1}},
		Skip:  (page - 1) * limit,
		Limit: limit,
	}
}

func (o FindOptions) driverOptions() *options.FindOptionsBuilder {
	findOpts := options.Find()
	if o.Limit > 0 {
		findOpts.SetLimit(o.Limit)
	}
	if o.Skip > 0 {
		findOpts.SetSkip(o.Skip)
	}
	if o.Sort != nil {
		findOpts.SetSort(o.Sort)
	}
	if o.Projection != nil {
		findOpts.SetProjection(o.Projection)
	}
	return findOpts
}

// UpdateResult reports the outcome of an update. A zero match is not an error.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports the outcome of a delete. A zero match is not an error.
type DeleteResult struct {
	DeletedCount int64
}

// Catalog is a handle on the books collection. Every operation is a single
// request to the server and is awaited before returning.
type Catalog struct {
	coll   *mongo.Collection
	schema *Schema

	mwMu sync.RWMutex
	mw   []MiddlewareFunc
}

func newCatalog(coll *mongo.Collection, schema *Schema) *Catalog {
	return &Catalog{coll: coll, schema: schema}
}

// Collection returns the underlying driver collection, or nil if the
// catalog came from a closed store.
func (c *Catalog) Collection() *mongo.Collection {
	return c.coll
}

// Schema returns the Book schema the catalog validates against.
func (c *Catalog) Schema() *Schema {
	return c.schema
}

func (c *Catalog) name() string {
	if c.coll == nil {
		return CollectionName
	}
	return c.coll.Name()
}

func (c *Catalog) collection() (*mongo.Collection, error) {
	if c.coll == nil {
		return nil, ErrNotConnected
	}
	return c.coll, nil
}

// Count returns the number of documents matching filter. A nil filter counts
// every document.
func (c *Catalog) Count(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = All()
	}

	var n int64
	err := c.run(ctx, &OpInfo{Operation: OpCount, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		n, err = coll.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("bookstore: count failed: %w", err)
		}
		return nil
	})
	return n, err
}

// Find returns every book matching filter. Each stored document must match
// the Book schema exactly; see DecodeStrict.
func (c *Catalog) Find(ctx context.Context, filter interface{}, opts ...FindOptions) ([]Book, error) {
	var opt FindOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	var books []Book
	err := c.find(ctx, filter, opt, func(cursor *mongo.Cursor) error {
		var err error
		books, err = decodeAll[Book](ctx, cursor, c.schema)
		return err
	})
	return books, err
}

// FindSummaries returns the title, author, and price of every book matching
// filter. The summary projection is applied unless opts sets its own.
func (c *Catalog) FindSummaries(ctx context.Context, filter interface{}, opts ...FindOptions) ([]BookSummary, error) {
	var opt FindOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Projection == nil {
		opt.Projection = SummaryProjection()
	}

	var summaries []BookSummary
	err := c.find(ctx, filter, opt, func(cursor *mongo.Cursor) error {
		var err error
		summaries, err = decodeAll[BookSummary](ctx, cursor, SummarySchema())
		return err
	})
	return summaries, err
}

func (c *Catalog) find(ctx context.Context, filter interface{}, opt FindOptions, decode func(*mongo.Cursor) error) error {
	if filter == nil {
		filter = All()
	}

	return c.run(ctx, &OpInfo{Operation: OpFind, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		cursor, err := coll.Find(ctx, filter, opt.driverOptions())
		if err != nil {
			return fmt.Errorf("bookstore: find failed: %w", err)
		}
		return decode(cursor)
	})
}

// UpdateOne applies update to the first document matching filter.
// Matching nothing yields a zero result, not an error.
func (c *Catalog) UpdateOne(ctx context.Context, filter, update interface{}) (*UpdateResult, error) {
	var result *UpdateResult
	err := c.run(ctx, &OpInfo{Operation: OpUpdateOne, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		res, err := coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("bookstore: update one failed: %w", err)
		}
		result = &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
		return nil
	})
	return result, err
}

// DeleteOne removes the first document matching filter.
// Matching nothing yields a zero result, not an error.
func (c *Catalog) DeleteOne(ctx context.Context, filter interface{}) (*DeleteResult, error) {
	var result *DeleteResult
	err := c.run(ctx, &OpInfo{Operation: OpDeleteOne, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		res, err := coll.DeleteOne(ctx, filter)
		if err != nil {
			return fmt.Errorf("bookstore: delete one failed: %w", err)
		}
		result = &DeleteResult{DeletedCount: res.DeletedCount}
		return nil
	})
	return result, err
}
