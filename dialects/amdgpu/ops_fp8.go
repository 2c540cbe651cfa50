package amdgpu

// Packed 8-bit float conversions. These operate on logical 4-lane fp8
// vectors packed into one 32-bit word: truncation/rounding write one
// 2-lane sub-word selected by an index attribute, and an optionally
// provided "existing" vector supplies the fill values for the lanes not
// being written.

import (
	"github.com/gomlir/gomlir/mlir"
)

var extPackedFp8Spec = mlir.OpSpec{
	Name: "amdgpu.ext_packed_fp8",
	Operands: []mlir.OperandGroup{
		{Name: "source", Kind: mlir.OperandSingle},
	},
}

// ExtPackedFp8 extends one fp8 lane of source to a 32-bit float. The
// index attribute selects which of the (up to 4) packed lanes is read.
func (b *Builder) ExtPackedFp8(loc mlir.Location, resultType mlir.Type, source mlir.Value, index int32) (mlir.Operation, error) {
	return b.create(extPackedFp8Spec.Build(loc).
		Operand(source).
		Attr("index", mlir.IntegerAttr(index)).
		Results(resultType).
		Done())
}

var packedTrunc2xFp8Spec = mlir.OpSpec{
	Name: "amdgpu.packed_trunc_2xfp8",
	Operands: []mlir.OperandGroup{
		{Name: "sourceA", Kind: mlir.OperandSingle},
		{Name: "sourceB", Kind: mlir.OperandOptional},
		{Name: "existing", Kind: mlir.OperandOptional},
	},
}

// PackedTrunc2xFp8 truncates sourceA and sourceB to fp8 and packs them
// into the 2-lane word of the result selected by wordIndex.
//
// sourceB may be withheld, leaving its lane undefined. When existing is
// given, the lanes outside the written word keep its values; otherwise
// they are undefined.
func (b *Builder) PackedTrunc2xFp8(loc mlir.Location, resultType mlir.Type,
	sourceA mlir.Value, sourceB, existing mlir.Optional[mlir.Value], wordIndex int32) (mlir.Operation, error) {
	return b.create(packedTrunc2xFp8Spec.Build(loc).
		Operand(sourceA).
		OptionalOperand(sourceB).
		OptionalOperand(existing).
		Attr("wordIndex", mlir.IntegerAttr(wordIndex)).
		Results(resultType).
		Done())
}

var packedStochRoundFp8Spec = mlir.OpSpec{
	Name: "amdgpu.packed_stoch_round_fp8",
	Operands: []mlir.OperandGroup{
		{Name: "source", Kind: mlir.OperandSingle},
		{Name: "stochiasticParam", Kind: mlir.OperandSingle},
		{Name: "existing", Kind: mlir.OperandOptional},
	},
}

// PackedStochRoundFp8 rounds source to fp8 stochastically, with
// stochiasticParam as the entropy source, and stores it into the result
// lane selected by storeIndex. When existing is given, the other lanes
// keep its values; otherwise they are undefined.
func (b *Builder) PackedStochRoundFp8(loc mlir.Location, resultType mlir.Type,
	source, stochiasticParam mlir.Value, existing mlir.Optional[mlir.Value], storeIndex int32) (mlir.Operation, error) {
	return b.create(packedStochRoundFp8Spec.Build(loc).
		Operand(source).
		Operand(stochiasticParam).
		OptionalOperand(existing).
		Attr("storeIndex", mlir.IntegerAttr(storeIndex)).
		Results(resultType).
		Done())
}
