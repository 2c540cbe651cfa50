package mlir

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Attribute is the value of one attribute entry in an operation
// descriptor. The closed set of kinds below covers everything the bound
// dialect needs: integers, booleans, unit (presence-only) flags,
// enumerated flags, and the dense i32 array synthesized for operand
// segment sizes. The external framework converts these into its own
// attribute representation when the descriptor is submitted.
type Attribute interface {
	// String renders the attribute in generic form, for logging and the
	// OperationState debug printout.
	String() string

	isAttribute()
}

// NamedAttribute is one name/value entry of a descriptor's attribute
// mapping. Entries are kept as an ordered list, not a map: insertion
// order is the operation's declaration order (required attributes before
// optional ones), so the rendered descriptor is reproducible.
type NamedAttribute struct {
	Name  string
	Value Attribute
}

// IntegerAttr is a signed integer attribute value.
type IntegerAttr int64

func (a IntegerAttr) String() string { return fmt.Sprintf("%d : i32", int64(a)) }
func (IntegerAttr) isAttribute()     {}

// BoolAttr is a boolean attribute value.
type BoolAttr bool

func (a BoolAttr) String() string { return fmt.Sprintf("%t", bool(a)) }
func (BoolAttr) isAttribute()     {}

// UnitAttr is a presence-only flag: carrying the attribute at all is the
// information, there is no payload.
type UnitAttr struct{}

func (UnitAttr) String() string { return "unit" }
func (UnitAttr) isAttribute()   {}

// EnumAttr is an enumerated flag: the symbolic case name plus the integer
// case value it stands for.
type EnumAttr struct {
	Symbol string
	Case   int64
}

func (a EnumAttr) String() string { return "#" + a.Symbol }
func (EnumAttr) isAttribute()     {}

// DenseI32ArrayAttr is a dense array of 32-bit integers. Its one use in
// this layer is the synthesized operand-segment-sizes attribute.
type DenseI32ArrayAttr []int32

func (a DenseI32ArrayAttr) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "array<i32: " + strings.Join(parts, ", ") + ">"
}
func (DenseI32ArrayAttr) isAttribute() {}

// OptionalIntegerAttr lifts an optional integer source value into an
// optional IntegerAttr, preserving absence.
func OptionalIntegerAttr[T constraints.Integer](o Optional[T]) Optional[Attribute] {
	if !o.Present() {
		return None[Attribute]()
	}
	return Some[Attribute](IntegerAttr(o.Value()))
}

// OptionalBoolAttr lifts an optional boolean source value into an
// optional BoolAttr, preserving absence.
func OptionalBoolAttr(o Optional[bool]) Optional[Attribute] {
	if !o.Present() {
		return None[Attribute]()
	}
	return Some[Attribute](BoolAttr(o.Value()))
}
