package bookstore

import (
	"fmt"
	"reflect"
	"slices"
)

// Validate checks a document value against its schema and returns every
// field that fails. A nil result means the value is valid.
func Validate(model interface{}, schema *Schema) []ValidationError {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var errs []ValidationError
	for _, fs := range schema.Fields {
		sf, ok := v.Type().FieldByName(fs.Name)
		if !ok {
			continue
		}
		// A nil embedded pointer leaves its promoted fields unreachable.
		fv, err := v.FieldByIndexErr(sf.Index)
		if err != nil {
			continue
		}
		errs = append(errs, validateField(fv, fs)...)
	}
	return errs
}

func validateField(fv reflect.Value, fs FieldSchema) []ValidationError {
	var errs []ValidationError
	fail := func(format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: fs.BSONName, Message: fmt.Sprintf(format, args...)})
	}

	if fs.Required && fv.IsZero() {
		fail("field is required")
		return errs
	}

	if len(fs.Enum) > 0 && !fv.IsZero() {
		if s := stringValue(fv); !slices.Contains(fs.Enum, s) {
			fail("value %q is not in enum %v", s, fs.Enum)
		}
	}

	if fv.Kind() == reflect.String {
		if fs.Min != nil && fv.Len() < *fs.Min && !fv.IsZero() {
			fail("length %d is less than minimum %d", fv.Len(), *fs.Min)
		}
		if fs.Max != nil && fv.Len() > *fs.Max {
			fail("length %d exceeds maximum %d", fv.Len(), *fs.Max)
		}
		return errs
	}

	n, ok := toFloat(fv)
	if !ok {
		return errs
	}
	if fs.Min != nil && n < float64(*fs.Min) {
		fail("value %v is less than minimum %d", fv, *fs.Min)
	}
	if fs.Max != nil && n > float64(*fs.Max) {
		fail("value %v exceeds maximum %d", fv, *fs.Max)
	}
	return errs
}

// stringValue extracts a string representation of a value for enum comparison.
func stringValue(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return v.String()
	}
	return fmt.Sprintf("%v", v)
}

// toFloat extracts a numeric value from a reflect.Value.
func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
