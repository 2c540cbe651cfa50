// Package amdgpu builds the operations of the AMDGPU compiler-IR dialect:
// AMD-specific wrappers around device instructions (matrix cores, raw
// buffer memory access, packed 8-bit float conversions, LDS
// synchronization).
//
// Each method assembles one operation descriptor and submits it through a
// mlir.Context. The external framework owns verification and the lowering
// of these operations to machine intrinsics; this package only guarantees
// that operands, segment sizes and attributes are packed the way each
// operation declares them.
package amdgpu

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlir/gomlir/mlir"
)

// DialectName prefixes the name of every operation built by this package.
const DialectName = "amdgpu"

// Builder constructs AMDGPU dialect operations through an external
// construction entry point.
//
// It holds no per-operation state: every call assembles a fresh
// descriptor, submits it and returns the resulting operation handle. Any
// concurrency guarantee (or lack thereof) over the underlying Context is
// the external framework's, not this package's.
type Builder struct {
	ctx mlir.Context
	tag string
}

// New returns a Builder that submits operations to ctx.
func New(ctx mlir.Context) *Builder {
	return &Builder{
		ctx: ctx,
		tag: fmt.Sprintf("<amdgpu.Builder id=%s>", uuid.NewString()),
	}
}

// create submits an assembled descriptor. It takes the (state, error)
// pair returned by mlir.StateBuilder.Done, so op methods can hand the
// assembly result straight through.
func (b *Builder) create(state *mlir.OperationState, err error) (mlir.Operation, error) {
	if err != nil {
		return nil, err
	}
	if klog.V(2).Enabled() {
		klog.Infof("%s: %s", b.tag, state)
	}
	op, err := b.ctx.Create(state)
	if err != nil {
		return nil, errors.WithMessagef(err, "while building %s", state.Name)
	}
	return op, nil
}
