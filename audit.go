package bookstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultDriftSample is the number of documents DetectDrift inspects when
// called with a non-positive sample size.
const DefaultDriftSample = 100

// DetectDrift samples documents from the catalog and reports keys that exist
// in the database but not in the schema, and schema keys missing from
// documents. Each field is reported once.
func (c *Catalog) DetectDrift(ctx context.Context, sample int64) ([]DriftError, error) {
	if sample <= 0 {
		sample = DefaultDriftSample
	}

	var drifts []DriftError
	err := c.run(ctx, &OpInfo{Operation: OpFind, Collection: c.name(), Filter: All()}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		cursor, err := coll.Find(ctx, All(), options.Find().SetLimit(sample))
		if err != nil {
			return fmt.Errorf("bookstore: drift sample failed: %w", err)
		}
		defer func() { _ = cursor.Close(ctx) }()

		seen := make(map[string]bool)
		for cursor.Next(ctx) {
			drifts = append(drifts, documentDrift(cursor.Current, c.schema, seen)...)
		}
		return cursor.Err()
	})
	return drifts, err
}

// documentDrift compares one document's keys to schema. Fields already in
// seen are skipped; newly reported fields are added to it.
func documentDrift(raw bson.Raw, schema *Schema, seen map[string]bool) []DriftError {
	elems, err := raw.Elements()
	if err != nil {
		return nil
	}

	var drifts []DriftError
	present := make(map[string]bool, len(elems))
	for _, e := range elems {
		key := e.Key()
		present[key] = true
		if !schema.HasField(key) && !seen[key] {
			seen[key] = true
			drifts = append(drifts, DriftError{
				Collection: schema.Collection,
				Field:      key,
				Message:    "field exists in database but not in schema",
				Err:        ErrUnknownField,
			})
		}
	}
	for _, key := range schema.ExpectedKeys() {
		if !present[key] && !seen[key] {
			seen[key] = true
			drifts = append(drifts, DriftError{
				Collection: schema.Collection,
				Field:      key,
				Message:    "field defined in schema is missing from document",
				Err:        ErrMissingField,
			})
		}
	}
	return drifts
}
