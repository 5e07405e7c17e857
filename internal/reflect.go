// Package internal holds reflection helpers shared by schema parsing and
// strict decoding.
package internal

import (
	"reflect"
)

// StructFields returns the exported fields of a struct type in declaration
// order. Embedded structs, exported or not, are flattened so their exported
// fields appear inline.
func StructFields(t reflect.Type) []reflect.StructField {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			// Flattened whether or not the embedded type is exported.
			if ft.Kind() == reflect.Struct {
				fields = append(fields, StructFields(ft)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

// TypeName returns a short, human-readable name for t, qualified by its
// package name (e.g. "bson.ObjectID", "[]string").
func TypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	}
	return t.String()
}
