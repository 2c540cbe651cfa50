package amdgpu

// Raw-buffer memory operations: loads, stores and atomics issued through
// the hardware's buffer resource descriptors. The hardware defines
// out-of-bounds accesses: stores are silently dropped and loads return
// zero. Nothing in this layer checks bounds.

import (
	"github.com/gomlir/gomlir/mlir"
)

// RawBufferAttrs carries the attributes shared by all raw-buffer
// operations.
type RawBufferAttrs struct {
	// BoundsCheck requests hardware bounds checking on the access.
	// Caveat for callers: on RDNA chipsets the flag cannot always be
	// honored and the lowering falls back to unchecked access. This is a
	// property of the target, recorded here only as an attribute.
	BoundsCheck mlir.Optional[bool]

	// IndexOffset is a compile-time constant added to the computed
	// index.
	IndexOffset mlir.Optional[int32]
}

func (a RawBufferAttrs) pack(sb *mlir.StateBuilder) *mlir.StateBuilder {
	return sb.
		OptionalAttr("boundsCheck", mlir.OptionalBoolAttr(a.BoundsCheck)).
		OptionalAttr("indexOffset", mlir.OptionalIntegerAttr(a.IndexOffset))
}

var rawBufferLoadSpec = mlir.OpSpec{
	Name: "amdgpu.raw_buffer_load",
	Operands: []mlir.OperandGroup{
		{Name: "memref", Kind: mlir.OperandSingle},
		{Name: "indices", Kind: mlir.OperandVariadic},
		{Name: "sgprOffset", Kind: mlir.OperandOptional},
	},
}

// RawBufferLoad loads resultType from memref at the given indices, with
// an optional wave-uniform sgprOffset added to the address.
func (b *Builder) RawBufferLoad(loc mlir.Location, resultType mlir.Type,
	memref mlir.Value, indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value],
	attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.create(attrs.pack(rawBufferLoadSpec.Build(loc).
		Operand(memref).
		Variadic(indices...).
		OptionalOperand(sgprOffset)).
		Results(resultType).
		Done())
}

// rawBufferWriteSpec is the shared operand layout of the store and the
// single-operand atomics.
func rawBufferWriteSpec(name string) mlir.OpSpec {
	return mlir.OpSpec{
		Name: name,
		Operands: []mlir.OperandGroup{
			{Name: "value", Kind: mlir.OperandSingle},
			{Name: "memref", Kind: mlir.OperandSingle},
			{Name: "indices", Kind: mlir.OperandVariadic},
			{Name: "sgprOffset", Kind: mlir.OperandOptional},
		},
	}
}

var (
	rawBufferStoreSpec      = rawBufferWriteSpec("amdgpu.raw_buffer_store")
	rawBufferAtomicFaddSpec = rawBufferWriteSpec("amdgpu.raw_buffer_atomic_fadd")
	rawBufferAtomicFmaxSpec = rawBufferWriteSpec("amdgpu.raw_buffer_atomic_fmax")
	rawBufferAtomicSmaxSpec = rawBufferWriteSpec("amdgpu.raw_buffer_atomic_smax")
	rawBufferAtomicUminSpec = rawBufferWriteSpec("amdgpu.raw_buffer_atomic_umin")
)

// rawBufferWrite assembles any of the result-less raw-buffer operations
// that take a value to apply plus the addressed location.
func (b *Builder) rawBufferWrite(spec *mlir.OpSpec, loc mlir.Location,
	value, memref mlir.Value, indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value],
	attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.create(attrs.pack(spec.Build(loc).
		Operand(value).
		Operand(memref).
		Variadic(indices...).
		OptionalOperand(sgprOffset)).
		Done())
}

// RawBufferStore stores value to memref at the given indices. No result.
func (b *Builder) RawBufferStore(loc mlir.Location, value, memref mlir.Value,
	indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value], attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.rawBufferWrite(&rawBufferStoreSpec, loc, value, memref, indices, sgprOffset, attrs)
}

// RawBufferAtomicFadd atomically adds the float value to the addressed
// location.
func (b *Builder) RawBufferAtomicFadd(loc mlir.Location, value, memref mlir.Value,
	indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value], attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.rawBufferWrite(&rawBufferAtomicFaddSpec, loc, value, memref, indices, sgprOffset, attrs)
}

// RawBufferAtomicFmax atomically takes the float maximum.
func (b *Builder) RawBufferAtomicFmax(loc mlir.Location, value, memref mlir.Value,
	indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value], attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.rawBufferWrite(&rawBufferAtomicFmaxSpec, loc, value, memref, indices, sgprOffset, attrs)
}

// RawBufferAtomicSmax atomically takes the signed-integer maximum.
func (b *Builder) RawBufferAtomicSmax(loc mlir.Location, value, memref mlir.Value,
	indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value], attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.rawBufferWrite(&rawBufferAtomicSmaxSpec, loc, value, memref, indices, sgprOffset, attrs)
}

// RawBufferAtomicUmin atomically takes the unsigned-integer minimum.
func (b *Builder) RawBufferAtomicUmin(loc mlir.Location, value, memref mlir.Value,
	indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value], attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.rawBufferWrite(&rawBufferAtomicUminSpec, loc, value, memref, indices, sgprOffset, attrs)
}

var rawBufferAtomicCmpswapSpec = mlir.OpSpec{
	Name: "amdgpu.raw_buffer_atomic_cmpswap",
	Operands: []mlir.OperandGroup{
		{Name: "src", Kind: mlir.OperandSingle},
		{Name: "cmp", Kind: mlir.OperandSingle},
		{Name: "memref", Kind: mlir.OperandSingle},
		{Name: "indices", Kind: mlir.OperandVariadic},
		{Name: "sgprOffset", Kind: mlir.OperandOptional},
	},
}

// RawBufferAtomicCmpswap atomically stores src to the addressed location
// if it currently holds cmp, and returns the value the location held
// before the operation.
func (b *Builder) RawBufferAtomicCmpswap(loc mlir.Location, resultType mlir.Type,
	src, cmp, memref mlir.Value, indices []mlir.Value, sgprOffset mlir.Optional[mlir.Value],
	attrs RawBufferAttrs) (mlir.Operation, error) {
	return b.create(attrs.pack(rawBufferAtomicCmpswapSpec.Build(loc).
		Operand(src).
		Operand(cmp).
		Operand(memref).
		Variadic(indices...).
		OptionalOperand(sgprOffset)).
		Results(resultType).
		Done())
}
