package inventory

import (
	"encoding/json"
	"math"
	"strconv"
)

// Field is an optional value read from a loosely-typed dump. A Field is either
// present with a value or absent; absent means the key was missing or held a
// value of the wrong shape.
type Field[T any] struct {
	value   T
	present bool
}

// Present returns a Field holding v.
func Present[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Absent returns an empty Field.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.present
}

// IsPresent reports whether the Field holds a value.
func (f Field[T]) IsPresent() bool {
	return f.present
}

// Or returns the value if present, otherwise def.
func (f Field[T]) Or(def T) T {
	if f.present {
		return f.value
	}
	return def
}

// stringField reads m[key] as a string.
func stringField(m map[string]any, key string) Field[string] {
	v, ok := m[key]
	if !ok {
		return Absent[string]()
	}
	s, ok := v.(string)
	if !ok {
		return Absent[string]()
	}
	return Present(s)
}

// mapField reads m[key] as a nested object.
func mapField(m map[string]any, key string) Field[map[string]any] {
	v, ok := m[key]
	if !ok {
		return Absent[map[string]any]()
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Absent[map[string]any]()
	}
	return Present(obj)
}

// listField reads m[key] as an array.
func listField(m map[string]any, key string) Field[[]any] {
	v, ok := m[key]
	if !ok {
		return Absent[[]any]()
	}
	list, ok := v.([]any)
	if !ok {
		return Absent[[]any]()
	}
	return Present(list)
}

// intField reads m[key] as an integer. Decoders disagree on how numbers come
// out of JSON, so integral floats, json.Number, and numeric strings are all
// accepted. Fractional values are absent.
func intField(m map[string]any, key string) Field[int] {
	v, ok := m[key]
	if !ok {
		return Absent[int]()
	}
	n, ok := toInt(v)
	if !ok {
		return Absent[int]()
	}
	return Present(n)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// floatToInt accepts integral floats that fit in an int.
func floatToInt(f float64) (int, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
