package envloader

import (
	"fmt"
	"reflect"
)

// InvalidTargetError is returned when Load receives anything other than a
// pointer to a struct.
type InvalidTargetError struct {
	Value reflect.Type
}

func (e *InvalidTargetError) Error() string {
	if e.Value.Kind() != reflect.Ptr {
		return fmt.Sprintf("envloader: target must be a pointer to struct, got %s", e.Value.Kind())
	}
	return fmt.Sprintf("envloader: target must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
}

// FieldError wraps a conversion failure for one struct field. For fields
// tagged secret the offending value is withheld from the message.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Secret    bool
	Err       error
}

func (e *FieldError) Error() string {
	if e.Secret {
		return fmt.Sprintf("envloader: field %s (%s): invalid value (redacted): %v", e.FieldName, e.EnvVar, e.Err)
	}
	return fmt.Sprintf("envloader: field %s (%s): invalid value %q: %v", e.FieldName, e.EnvVar, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// UnsupportedTypeError is returned for struct fields whose kind the loader
// cannot convert.
type UnsupportedTypeError struct {
	Kind reflect.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envloader: unsupported field type %s", e.Kind)
}
