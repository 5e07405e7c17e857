package bookstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// DecodeStrict unmarshals raw into out after checking its keys against
// schema. Keys the schema does not define and non-optional keys that are
// absent are both reported as *DriftError; the bson codec would otherwise
// drop the former and zero the latter without complaint.
func DecodeStrict(raw bson.Raw, schema *Schema, out interface{}) error {
	elems, err := raw.Elements()
	if err != nil {
		return fmt.Errorf("bookstore: malformed document: %w", err)
	}

	seen := make(map[string]bool, len(elems))
	for _, e := range elems {
		key := e.Key()
		if !schema.HasField(key) {
			return &DriftError{
				Collection: schema.Collection,
				Field:      key,
				Message:    "field exists in database but not in schema",
				Err:        ErrUnknownField,
			}
		}
		seen[key] = true
	}

	for _, key := range schema.ExpectedKeys() {
		if !seen[key] {
			return &DriftError{
				Collection: schema.Collection,
				Field:      key,
				Message:    "field defined in schema is missing from document",
				Err:        ErrMissingField,
			}
		}
	}

	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("bookstore: decode failed: %w", err)
	}
	return nil
}

// decodeAll drains cursor, strictly decoding each document. The cursor is
// closed before returning. The result is never nil so that empty reads print
// as an empty list.
func decodeAll[T any](ctx context.Context, cursor *mongo.Cursor, schema *Schema) ([]T, error) {
	defer func() { _ = cursor.Close(ctx) }()

	results := []T{}
	for cursor.Next(ctx) {
		var item T
		if err := DecodeStrict(cursor.Current, schema, &item); err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("bookstore: cursor failed: %w", err)
	}
	return results, nil
}
