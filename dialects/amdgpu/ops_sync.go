package amdgpu

import (
	"github.com/gomlir/gomlir/mlir"
)

var ldsBarrierSpec = mlir.OpSpec{
	Name: "amdgpu.lds_barrier",
}

// LDSBarrier marks a synchronization point over the workgroup's local
// data store: LDS accesses before the barrier complete before any access
// after it starts. It carries no operands, results or attributes; it
// exists for the pass infrastructure of the external framework.
func (b *Builder) LDSBarrier(loc mlir.Location) (mlir.Operation, error) {
	return b.create(ldsBarrierSpec.Build(loc).Done())
}
