package bookstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// InsertMany validates books and inserts them in a single round trip.
// Books with a zero ID are assigned a fresh ObjectID in place. Nothing is
// written if any book fails validation; the error names its index.
func (c *Catalog) InsertMany(ctx context.Context, books []Book) (int, error) {
	if len(books) == 0 {
		return 0, nil
	}

	var inserted int
	err := c.run(ctx, &OpInfo{Operation: OpInsertMany, Collection: c.name()}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}

		docs := make([]interface{}, len(books))
		for i := range books {
			if books[i].ID.IsZero() {
				books[i].ID = bson.NewObjectID()
			}
			if errs := Validate(&books[i], c.schema); len(errs) > 0 {
				return fmt.Errorf("bookstore: validation failed on item %d: %w", i, ValidationErrors(errs))
			}
			docs[i] = books[i]
		}

		res, err := coll.InsertMany(ctx, docs)
		if err != nil {
			return fmt.Errorf("bookstore: insert many failed: %w", err)
		}
		inserted = len(res.InsertedIDs)
		return nil
	})
	return inserted, err
}

// UpdateMany applies update to every document matching filter.
// Matching nothing yields a zero result, not an error.
func (c *Catalog) UpdateMany(ctx context.Context, filter, update interface{}) (*UpdateResult, error) {
	var result *UpdateResult
	err := c.run(ctx, &OpInfo{Operation: OpUpdateMany, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		res, err := coll.UpdateMany(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("bookstore: update many failed: %w", err)
		}
		result = &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
		return nil
	})
	return result, err
}
