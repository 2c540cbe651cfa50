// Package mlir defines the descriptor types used to assemble single IR
// operations and hand them to an external construction facility.
//
// This layer performs no verification beyond its own operand bookkeeping:
// a constructed OperationState is submitted through a Context, and the
// external framework's verifier is the one that accepts or rejects it.
// All handle types owned by that framework (values, types, locations,
// blocks, regions, constructed operations) are opaque here and only
// forwarded, never inspected or copied.
package mlir

// Value is an SSA value handle owned by the external framework.
//
// It is opaque from this layer's perspective: it is received from the
// caller and forwarded as an operand in an OperationState.
type Value any

// Type is a result-type handle owned by the external framework.
type Type any

// Location is a source-location handle owned by the external framework.
type Location any

// Operation is the handle of a constructed operation, as returned by
// Context.Create. Opaque to this layer.
type Operation any

// Region is an owned sub-region handle. The operations bound by this
// module never carry regions, but the descriptor forwards them so the
// Context signature matches the external entry point.
type Region any

// Block is a successor block handle. See Region.
type Block any

// Context is the external IR construction entry point.
//
// Create consumes the descriptor, builds the operation node and runs the
// framework's verifier. Any semantic rejection (operand arity, type
// mismatch, illegal attribute value) surfaces from here as an opaque
// error; callers of this layer must treat such a failure as fatal to the
// enclosing IR-building procedure.
type Context interface {
	Create(state *OperationState) (Operation, error)
}
