package mlir

import (
	"github.com/pkg/errors"
)

// OperandSegmentSizesAttrName is the attribute under which the synthesized
// per-group operand counts are recorded, when an operation needs them.
const OperandSegmentSizesAttrName = "operandSegmentSizes"

// OperandGroupKind is the packing rule of one logical operand group.
type OperandGroupKind int

//go:generate go tool enumer -type=OperandGroupKind -trimprefix=Operand -transform=snake -output=gen_operandgroupkind_enumer.go opspec.go

const (
	// OperandSingle is a required operand occupying exactly one slot.
	OperandSingle OperandGroupKind = iota

	// OperandOptional is an operand that may be withheld: one slot when
	// present, none when absent.
	OperandOptional

	// OperandVariadic is a variable-length operand list occupying one
	// slot per element.
	OperandVariadic
)

// OperandGroup declares one logical operand group of an operation: its
// role name (documentation and error messages only) and packing rule.
type OperandGroup struct {
	Name string
	Kind OperandGroupKind
}

// OpSpec is the immutable per-operation template: the operation name and
// the declared operand groups, in the order their slots appear in the
// flattened operand list.
//
// Dialect packages declare one OpSpec per operation at package level and
// start every construction call with OpSpec.Build, so the segment-size
// bookkeeping is driven by the declaration table rather than by ad hoc
// conditional appends.
type OpSpec struct {
	Name     string
	Operands []OperandGroup
}

// numVariable counts the groups whose slot count is not fixed at one.
// The segment-sizes attribute is only needed when there is more than one
// such group: with a single variable group, the flattened list still
// splits unambiguously.
func (spec *OpSpec) numVariable() int {
	n := 0
	for _, g := range spec.Operands {
		if g.Kind != OperandSingle {
			n++
		}
	}
	return n
}

// Build starts assembling an OperationState for this operation at the
// given location.
func (spec *OpSpec) Build(loc Location) *StateBuilder {
	return &StateBuilder{
		spec: spec,
		state: &OperationState{
			Name:     spec.Name,
			Location: loc,
		},
		sizes: make([]int32, 0, len(spec.Operands)),
	}
}

// StateBuilder assembles one OperationState, checking each operand call
// against the OpSpec's declared groups, in order, and recording how many
// physical slots each group occupied.
//
// The first bookkeeping violation is latched and reported by Done;
// intermediate calls after an error are no-ops. A violation here is a bug
// in the dialect binding, not a caller error: a miscounted segment would
// corrupt how the external framework later splits the operand list.
type StateBuilder struct {
	spec  *OpSpec
	state *OperationState
	sizes []int32
	next  int
	err   error
}

// nextGroup consumes the next declared group, checking its kind.
func (b *StateBuilder) nextGroup(kind OperandGroupKind) (OperandGroup, bool) {
	if b.err != nil {
		return OperandGroup{}, false
	}
	if b.next >= len(b.spec.Operands) {
		b.err = errors.Errorf("op %s: more operand groups packed than the %d declared",
			b.spec.Name, len(b.spec.Operands))
		return OperandGroup{}, false
	}
	g := b.spec.Operands[b.next]
	if g.Kind != kind {
		b.err = errors.Errorf("op %s: operand group %q is declared %s, packed as %s",
			b.spec.Name, g.Name, g.Kind, kind)
		return OperandGroup{}, false
	}
	b.next++
	return g, true
}

// Operand packs a required single-slot operand.
func (b *StateBuilder) Operand(v Value) *StateBuilder {
	if _, ok := b.nextGroup(OperandSingle); !ok {
		return b
	}
	b.state.Operands = append(b.state.Operands, v)
	b.sizes = append(b.sizes, 1)
	return b
}

// OptionalOperand packs an optional operand: one slot when present, no
// slot (and a zero segment size) when absent.
func (b *StateBuilder) OptionalOperand(v Optional[Value]) *StateBuilder {
	if _, ok := b.nextGroup(OperandOptional); !ok {
		return b
	}
	if v.Present() {
		b.state.Operands = append(b.state.Operands, v.Value())
		b.sizes = append(b.sizes, 1)
	} else {
		b.sizes = append(b.sizes, 0)
	}
	return b
}

// Variadic packs a variable-length operand group, one slot per element.
func (b *StateBuilder) Variadic(vs ...Value) *StateBuilder {
	if _, ok := b.nextGroup(OperandVariadic); !ok {
		return b
	}
	b.state.Operands = append(b.state.Operands, vs...)
	b.sizes = append(b.sizes, int32(len(vs)))
	return b
}

// Attr adds a required attribute. Required attributes must be added
// before optional ones so the descriptor's attribute order matches the
// operation's declaration order.
func (b *StateBuilder) Attr(name string, value Attribute) *StateBuilder {
	if b.err != nil {
		return b
	}
	b.state.AddAttribute(name, value)
	return b
}

// OptionalAttr adds an attribute only when its source value was supplied.
// An absent optional leaves no entry at all in the attribute mapping.
func (b *StateBuilder) OptionalAttr(name string, value Optional[Attribute]) *StateBuilder {
	if b.err != nil || !value.Present() {
		return b
	}
	b.state.AddAttribute(name, value.Value())
	return b
}

// Flag adds a unit attribute when set. Unit attributes carry no payload,
// so an unset flag is simply absent.
func (b *StateBuilder) Flag(name string, set bool) *StateBuilder {
	if b.err != nil || !set {
		return b
	}
	b.state.AddAttribute(name, UnitAttr{})
	return b
}

// Results declares the operation's explicit result types, in order.
func (b *StateBuilder) Results(types ...Type) *StateBuilder {
	if b.err != nil {
		return b
	}
	b.state.ResultTypes = append(b.state.ResultTypes, types...)
	return b
}

// Done finishes assembly: it checks that every declared group was packed,
// attaches the segment-sizes attribute when the operation has more than
// one variable group, and verifies that the recorded sizes add up to the
// operand count.
func (b *StateBuilder) Done() (*OperationState, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.next != len(b.spec.Operands) {
		return nil, errors.Errorf("op %s: %d of %d declared operand groups packed",
			b.spec.Name, b.next, len(b.spec.Operands))
	}
	var total int32
	for _, size := range b.sizes {
		total += size
	}
	if int(total) != len(b.state.Operands) {
		return nil, errors.Errorf("op %s: segment sizes add up to %d, but %d operands were packed",
			b.spec.Name, total, len(b.state.Operands))
	}
	if b.spec.numVariable() > 1 {
		b.state.AddAttribute(OperandSegmentSizesAttrName, DenseI32ArrayAttr(b.sizes))
	}
	return b.state, nil
}
