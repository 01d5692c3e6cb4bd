package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field. Set reports whether the key was present in the payload;
// Null reports an explicit JSON null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a set, non-null Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a set Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the document, which is what marks
// the field as set.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Present reports a set, non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Arg returns the value to store: nil for an explicit null.
func (o Optional[T]) Arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}

// ApplyTo overwrites a nullable field when the patch carries it.
func (o Optional[T]) ApplyTo(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

// ApplyValue overwrites a non-nullable field when the patch carries a value.
func (o Optional[T]) ApplyValue(dst *T) {
	if o.Present() {
		*dst = o.Value
	}
}
