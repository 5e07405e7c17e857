package bookstore

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IndexSpec describes an index on the books collection.
type IndexSpec struct {
	Name string
	Keys bson.D
}

// TextIndex creates a composite text-search index over fields.
func TextIndex(fields ...string) IndexSpec {
	keys := make(bson.D, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: "text"})
	}
	return IndexSpec{Name: indexName(keys), Keys: keys}
}

// AscendingIndex creates a single-field ascending index.
func AscendingIndex(field string) IndexSpec {
	keys := bson.D{{Key: field, Value: 1}}
	return IndexSpec{Name: indexName(keys), Keys: keys}
}

// SchemaIndexes returns the indexes a schema's tags ask for: one text index
// over every `text` field, then one ascending index per `index` field.
func SchemaIndexes(schema *Schema) []IndexSpec {
	var specs []IndexSpec
	var textFields []string
	for _, f := range schema.Fields {
		if f.Text {
			textFields = append(textFields, f.BSONName)
		}
	}
	if len(textFields) > 0 {
		specs = append(specs, TextIndex(textFields...))
	}
	for _, f := range schema.Fields {
		if f.Index {
			specs = append(specs, AscendingIndex(f.BSONName))
		}
	}
	return specs
}

// indexName follows the server's default naming: key and value joined by
// underscores, e.g. "title_text_author_text" or "published_year_1".
func indexName(keys bson.D) string {
	parts := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		parts = append(parts, k.Key, fmt.Sprint(k.Value))
	}
	return strings.Join(parts, "_")
}

// CreateIndex creates spec on the collection and returns the index name.
// Creating an index that already exists with the same definition is a no-op
// on the server.
func (c *Catalog) CreateIndex(ctx context.Context, spec IndexSpec) (string, error) {
	var name string
	err := c.run(ctx, &OpInfo{Operation: OpCreateIndex, Collection: c.name(), Filter: spec.Keys}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		model := mongo.IndexModel{
			Keys:    spec.Keys,
			Options: options.Index().SetName(spec.Name),
		}
		name, err = coll.Indexes().CreateOne(ctx, model)
		if err != nil {
			return fmt.Errorf("bookstore: failed to create index %s: %w", spec.Name, err)
		}
		return nil
	})
	return name, err
}

// ListIndexes returns the set of index names that exist on the collection.
func (c *Catalog) ListIndexes(ctx context.Context) (map[string]bool, error) {
	result := make(map[string]bool)
	err := c.run(ctx, &OpInfo{Operation: OpListIndexes, Collection: c.name()}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		cursor, err := coll.Indexes().List(ctx)
		if err != nil {
			return fmt.Errorf("bookstore: failed to list indexes: %w", err)
		}
		defer func() { _ = cursor.Close(ctx) }()

		for cursor.Next(ctx) {
			name, err := decodeIndexName(cursor.Current)
			if err != nil {
				return err
			}
			result[name] = true
		}
		if err := cursor.Err(); err != nil {
			return fmt.Errorf("bookstore: failed to list indexes: %w", err)
		}
		return nil
	})
	return result, err
}

func decodeIndexName(raw bson.Raw) (string, error) {
	var idx struct {
		Name string `bson:"name"`
	}
	if err := bson.Unmarshal(raw, &idx); err != nil {
		return "", fmt.Errorf("bookstore: failed to decode index spec: %w", err)
	}
	return idx.Name, nil
}
