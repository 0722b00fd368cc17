package funcdrills

import (
	"fmt"
	"reflect"
	"unicode"
)

// IsNumber reports whether v should be treated as a number.
//
// Booleans are never numbers. Integer, unsigned, float, and complex values
// always are, including named types built on them. Strings are numbers only
// when they are non-empty and made entirely of decimal digits, so "-1",
// "1.5", and " 7" are not. Any other input is a caller mistake and yields
// ErrUnsupportedType.
func IsNumber(v any) (bool, error) {
	if v == nil {
		return false, fmt.Errorf("is number: %w: <nil>", ErrUnsupportedType)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return false, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true, nil
	case reflect.String:
		return isDigits(rv.String()), nil
	default:
		return false, fmt.Errorf("is number: %w: %T", ErrUnsupportedType, v)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
