package types

import (
	"encoding/json"
	"strings"
)

// FlexList is a slice that can be unmarshaled from a JSON array, a
// single JSON value, or a string-encoded array ("[10,8,6]" or
// "10,8,6"). Older clients stored per-set sequences as serialized
// strings; this type normalizes every variant once at the API
// boundary so storage only ever sees native arrays.
type FlexList[T any] []T

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexList[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// If it starts with '[', treat it as a normal array
	if data[0] == '[' {
		var slice []T
		if err := json.Unmarshal(data, &slice); err != nil {
			return err
		}
		*f = FlexList[T](slice)
		return nil
	}

	// A JSON string: either an encoded array or comma-separated values
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.parseString(s)
	}

	// Otherwise, try to unmarshal as a single item and wrap it in a slice
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*f = FlexList[T]{item}
	return nil
}

func (f *FlexList[T]) parseString(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*f = FlexList[T]{}
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var slice []T
		if err := json.Unmarshal([]byte(s), &slice); err != nil {
			return err
		}
		*f = FlexList[T](slice)
		return nil
	}

	parts := strings.Split(s, ",")
	slice := make([]T, 0, len(parts))
	for _, p := range parts {
		var item T
		if err := json.Unmarshal([]byte(strings.TrimSpace(p)), &item); err != nil {
			return err
		}
		slice = append(slice, item)
	}
	*f = FlexList[T](slice)
	return nil
}

// Slice converts FlexList[T] back to []T.
func (f FlexList[T]) Slice() []T {
	return []T(f)
}
