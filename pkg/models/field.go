package models

import "encoding/json"

// Field is an optional request value. Set reports whether the key was
// supplied at all, Null whether it was supplied as JSON null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a supplied, non-null Field.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field that was supplied as null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Valid reports whether the field carries a usable value.
func (f Field[T]) Valid() bool { return f.Set && !f.Null }

// Arg is the value to bind for the field: nil when null.
func (f Field[T]) Arg() any {
	if f.Null {
		return nil
	}
	return f.Value
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		var zero T
		f.Null, f.Value = true, zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Change is one field assignment of a partial update.
type Change struct {
	Field string
	Value any
}

func appendChange[T any](c []Change, name string, f Field[T]) []Change {
	if !f.Set {
		return c
	}
	return append(c, Change{Field: name, Value: f.Arg()})
}
