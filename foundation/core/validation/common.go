// File: common.go
// Title: Validation Framework Utilities
// Description: Value inspection helpers shared by concrete validators.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package validation

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// GetValueLength returns the length of strings (in code points), slices,
// arrays and maps, or -1 for other types.
func GetValueLength(value interface{}) int {
	if value == nil {
		return 0
	}

	switch v := value.(type) {
	case string:
		return utf8.RuneCountInString(v)
	case []string:
		return len(v)
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
			return rv.Len()
		case reflect.String:
			return utf8.RuneCountInString(rv.String())
		default:
			return -1
		}
	}
}

// ConvertToInt64 converts the integer kinds to int64
func ConvertToInt64(value interface{}) (int64, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}

// IsNilOrEmpty checks if a value is nil or considered empty based on its type
func IsNilOrEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
