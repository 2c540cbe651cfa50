package mlir

import (
	"fmt"
	"strings"
)

// OperationState is the full descriptor submitted to Context.Create: one
// operation's name, location, flattened operand list, result types,
// ordered attributes, owned regions and successor blocks.
//
// A state is assembled fresh for every construction call, consumed by
// Create and then discarded; it has no life of its own after submission.
type OperationState struct {
	Name     string
	Location Location

	Operands    []Value
	ResultTypes []Type
	Attributes  []NamedAttribute
	Regions     []Region
	Successors  []Block

	// InferResultTypes asks the external framework to infer result types
	// instead of taking ResultTypes literally. The operations bound by
	// this module always declare their results explicitly, so the dialect
	// builders leave this false.
	InferResultTypes bool
}

// Attr returns the attribute with the given name, if present.
func (s *OperationState) Attr(name string) (Attribute, bool) {
	for _, entry := range s.Attributes {
		if entry.Name == name {
			return entry.Value, true
		}
	}
	return nil, false
}

// AddAttribute appends one name/value entry. Attribute order is
// significant (declaration order), hence append-only.
func (s *OperationState) AddAttribute(name string, value Attribute) {
	s.Attributes = append(s.Attributes, NamedAttribute{Name: name, Value: value})
}

// String renders the descriptor in a generic form close to the IR's
// textual syntax, with operands numbered by position. Used for klog
// traces and error messages; deterministic for a given state.
func (s *OperationState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q(", s.Name)
	for i := range s.Operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%%%d", i)
	}
	sb.WriteString(")")
	if len(s.Attributes) > 0 {
		sb.WriteString(" {")
		for i, entry := range s.Attributes {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s = %s", entry.Name, entry.Value)
		}
		sb.WriteString("}")
	}
	fmt.Fprintf(&sb, " : (%d operands) -> (%d results)", len(s.Operands), len(s.ResultTypes))
	return sb.String()
}
