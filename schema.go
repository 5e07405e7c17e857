package bookstore

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/plpbookstore/bookstore/internal"
)

// FieldSchema describes a single field parsed from struct tags.
type FieldSchema struct {
	Name     string   // Go field name
	BSONName string   // bson tag name
	Type     string   // Go type as string
	Optional bool     // bson omitempty: key may be absent from stored documents
	Required bool     // value must be non-zero
	Index    bool     // single-field ascending index
	Text     bool     // member of the collection's text index
	Enum     []string // allowed values
	Min      *int     // minimum value/length
	Max      *int     // maximum value/length
}

// Schema is the parsed representation of a document struct.
type Schema struct {
	ModelName  string        // Go struct name
	Collection string        // MongoDB collection name
	Fields     []FieldSchema // parsed fields
}

// ParseSchema reads the bson and bookstore struct tags of model, which must
// be a struct or a pointer to one.
func ParseSchema(model interface{}, collection string) (*Schema, error) {
	t := reflect.TypeOf(model)
	if t == nil {
		return nil, fmt.Errorf("bookstore: ParseSchema expects a struct, got nil")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bookstore: ParseSchema expects a struct, got %s", t.Kind())
	}

	schema := &Schema{
		ModelName:  t.Name(),
		Collection: collection,
	}

	for _, f := range internal.StructFields(t) {
		bsonName, omitempty := ParseBSONTag(f.Tag.Get("bson"))
		if bsonName == "" {
			bsonName = strings.ToLower(f.Name)
		}
		if bsonName == "-" {
			continue
		}

		fs := ParseFieldTag(f.Tag.Get("bookstore"))
		fs.Name = f.Name
		fs.BSONName = bsonName
		fs.Type = internal.TypeName(f.Type)
		fs.Optional = omitempty

		schema.Fields = append(schema.Fields, fs)
	}

	return schema, nil
}

func mustParseSchema(model interface{}, collection string) *Schema {
	s, err := ParseSchema(model, collection)
	if err != nil {
		panic(err)
	}
	return s
}

// HasField returns true if the schema contains a field with the given BSON name.
func (s *Schema) HasField(bsonName string) bool {
	return s.GetField(bsonName) != nil
}

// GetField returns the FieldSchema for a given BSON name, or nil if not found.
func (s *Schema) GetField(bsonName string) *FieldSchema {
	for i := range s.Fields {
		if s.Fields[i].BSONName == bsonName {
			return &s.Fields[i]
		}
	}
	return nil
}

// ExpectedKeys returns the BSON names every stored document must carry,
// in declaration order.
func (s *Schema) ExpectedKeys() []string {
	var names []string
	for _, f := range s.Fields {
		if !f.Optional {
			names = append(names, f.BSONName)
		}
	}
	return names
}
