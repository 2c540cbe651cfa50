// Package mlirtest holds test utilities for packages that build operation
// descriptors: a recording mlir.Context that captures every submitted
// OperationState so tests can assert on operand packing, segment sizes
// and attribute contents without a real IR framework behind them.
package mlirtest

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

// Recorder implements mlir.Context by recording each descriptor it
// receives. The descriptor itself doubles as the returned operation
// handle, so callers can follow the handle back to what was submitted.
type Recorder struct {
	// States holds every descriptor submitted, in order.
	States []*mlir.OperationState

	// FailWith, when set, makes Create reject every submission with this
	// error, standing in for the external verifier.
	FailWith error
}

var _ mlir.Context = (*Recorder)(nil)

// Create implements mlir.Context.
func (r *Recorder) Create(state *mlir.OperationState) (mlir.Operation, error) {
	if r.FailWith != nil {
		return nil, errors.WithMessagef(r.FailWith, "verifying %s", state.Name)
	}
	r.States = append(r.States, state)
	return state, nil
}

// Last returns the most recently recorded descriptor, failing the test if
// nothing was recorded.
func (r *Recorder) Last(t *testing.T) *mlir.OperationState {
	require.NotEmpty(t, r.States, "no operation descriptor was submitted")
	return r.States[len(r.States)-1]
}

// RequireSegments asserts the descriptor's operandSegmentSizes attribute:
// with no sizes given it must be absent, otherwise it must match exactly
// and add up to the operand count.
func RequireSegments(t *testing.T, state *mlir.OperationState, sizes ...int32) {
	attr, found := state.Attr(mlir.OperandSegmentSizesAttrName)
	if len(sizes) == 0 {
		require.False(t, found, "%s: unexpected %s attribute", state.Name, mlir.OperandSegmentSizesAttrName)
		return
	}
	require.True(t, found, "%s: missing %s attribute", state.Name, mlir.OperandSegmentSizesAttrName)
	require.Equal(t, mlir.DenseI32ArrayAttr(sizes), attr)
	var total int32
	for _, size := range sizes {
		total += size
	}
	require.Equal(t, int(total), len(state.Operands),
		"%s: segment sizes must add up to the operand count", state.Name)
}

// RequireNoAttr asserts the attribute is entirely absent from the
// descriptor (optional attributes are omitted, never present as a
// placeholder).
func RequireNoAttr(t *testing.T, state *mlir.OperationState, name string) {
	_, found := state.Attr(name)
	require.False(t, found, "%s: attribute %q should be absent", state.Name, name)
}

// RequireAttr asserts the attribute is present exactly once with the
// given value.
func RequireAttr(t *testing.T, state *mlir.OperationState, name string, want mlir.Attribute) {
	count := 0
	for _, entry := range state.Attributes {
		if entry.Name == name {
			count++
		}
	}
	require.Equal(t, 1, count, "%s: attribute %q should appear exactly once", state.Name, name)
	attr, _ := state.Attr(name)
	require.Equal(t, want, attr)
}
