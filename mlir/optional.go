package mlir

import (
	"github.com/gomlx/exceptions"
)

// Optional wraps a value that may be withheld by the caller: an optional
// operand or the source value of an optional attribute.
//
// Presence is tracked explicitly, so a present zero value is distinct from
// an absent one. Absent optional operands occupy no slot in the flattened
// operand list, and absent optional attributes are omitted entirely from
// the attribute mapping.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Present reports whether a value was supplied.
func (o Optional[T]) Present() bool { return o.present }

// Value returns the wrapped value. It panics (with a stack-trace, see
// github.com/gomlx/exceptions) if the Optional is absent, since that is a
// programming error on the caller's side.
func (o Optional[T]) Value() T {
	if !o.present {
		exceptions.Panicf("mlir.Optional[%T].Value() called on an absent optional", o.value)
	}
	return o.value
}

// ValueOr returns the wrapped value if present, otherwise def.
func (o Optional[T]) ValueOr(def T) T {
	if !o.present {
		return def
	}
	return o.value
}
