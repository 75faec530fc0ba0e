// Package envloader fills configuration structs from environment variables
// using the "env" and "envDefault" struct tags. Fields tagged `secret:"true"`
// never have their raw value echoed in error messages.
package envloader

import (
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Load populates target (a pointer to struct) from the environment. Nested
// structs are processed recursively. Resolution order per field:
//
//  1. the environment variable named by the "env" tag, when set;
//  2. the "envDefault" tag, only when the field still holds its zero value
//     (so values loaded earlier, e.g. from a config file, are preserved);
//  3. otherwise the field is left untouched.
func Load(target any) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidTargetError{Value: val.Type()}
	}
	return loadStruct(val.Elem())
}

func loadStruct(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}
		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}
		secret := fieldType.Tag.Get("secret") == "true"

		value := os.Getenv(envTag)
		if value == "" {
			if !field.IsZero() {
				continue
			}
			value = fieldType.Tag.Get("envDefault")
			if value == "" {
				continue
			}
		}

		if err := setField(field, value); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     value,
				Secret:    secret,
				Err:       err,
			}
		}
	}

	return nil
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)

	default:
		return &UnsupportedTypeError{Kind: field.Kind()}
	}
	return nil
}
