package amdgpu

// Matrix-core operations, one per hardware generation: MFMA for the
// CDNA-style matrix cores and WMMA for the RDNA3-style ones. Which
// hardware instruction variant is selected is decided downstream by the
// lowering, from the joint operand and result types; this layer only
// records shapes and modifiers as attributes.

import (
	"github.com/gomlir/gomlir/mlir"
)

// MFMAAttrs carries the attributes of an MFMA operation. M, N, K and
// Blocks are required and describe the m x n x k (x blocks) tile computed
// per instruction; the remaining fields are modifiers, omitted from the
// descriptor when absent or unset.
type MFMAAttrs struct {
	M, N, K, Blocks int32

	// CBSZ and ABID are the broadcast controls: CBSZ is the number of
	// source blocks A is broadcast from, ABID the block id to take.
	CBSZ, ABID mlir.Optional[int32]

	// BLGP is the lane permutation applied to B.
	BLGP mlir.Optional[MFMAPermB]

	// ReducePrecision allows fp32 inputs to be computed at reduced
	// (bf16-class) internal precision where the chip supports it.
	ReducePrecision bool

	// NegateA, NegateB and NegateC negate the respective input. Only
	// meaningful on double-precision-capable matrix cores.
	NegateA, NegateB, NegateC bool
}

var mfmaSpec = mlir.OpSpec{
	Name: "amdgpu.mfma",
	Operands: []mlir.OperandGroup{
		{Name: "sourceA", Kind: mlir.OperandSingle},
		{Name: "sourceB", Kind: mlir.OperandSingle},
		{Name: "destC", Kind: mlir.OperandSingle},
	},
}

// MFMA multiplies sourceA by sourceB and accumulates into destC,
// returning the accumulated tile as destType.
func (b *Builder) MFMA(loc mlir.Location, destType mlir.Type,
	sourceA, sourceB, destC mlir.Value, attrs MFMAAttrs) (mlir.Operation, error) {
	return b.create(mfmaSpec.Build(loc).
		Operand(sourceA).
		Operand(sourceB).
		Operand(destC).
		Attr("m", mlir.IntegerAttr(attrs.M)).
		Attr("n", mlir.IntegerAttr(attrs.N)).
		Attr("k", mlir.IntegerAttr(attrs.K)).
		Attr("blocks", mlir.IntegerAttr(attrs.Blocks)).
		OptionalAttr("cbsz", mlir.OptionalIntegerAttr(attrs.CBSZ)).
		OptionalAttr("abid", mlir.OptionalIntegerAttr(attrs.ABID)).
		OptionalAttr("blgp", optionalPermAttr(attrs.BLGP)).
		Flag("reducePrecision", attrs.ReducePrecision).
		Flag("negateA", attrs.NegateA).
		Flag("negateB", attrs.NegateB).
		Flag("negateC", attrs.NegateC).
		Results(destType).
		Done())
}

// WMMAAttrs carries the attributes of a WMMA operation; all of them are
// modifiers, omitted from the descriptor when absent or unset.
type WMMAAttrs struct {
	// SubwordOffset selects which half of the 16-bit output lanes is
	// written when results are sub-word sized.
	SubwordOffset mlir.Optional[int32]

	// UnsignedA and UnsignedB mark integer inputs as unsigned.
	UnsignedA, UnsignedB bool

	// Clamp saturates integer results instead of wrapping on overflow.
	Clamp bool
}

var wmmaSpec = mlir.OpSpec{
	Name: "amdgpu.wmma",
	Operands: []mlir.OperandGroup{
		{Name: "sourceA", Kind: mlir.OperandSingle},
		{Name: "sourceB", Kind: mlir.OperandSingle},
		{Name: "destC", Kind: mlir.OperandSingle},
	},
}

// WMMA multiplies sourceA by sourceB and accumulates into destC on the
// wave-level matrix cores, returning the accumulated tile as destType.
func (b *Builder) WMMA(loc mlir.Location, destType mlir.Type,
	sourceA, sourceB, destC mlir.Value, attrs WMMAAttrs) (mlir.Operation, error) {
	return b.create(wmmaSpec.Build(loc).
		Operand(sourceA).
		Operand(sourceB).
		Operand(destC).
		OptionalAttr("subwordOffset", mlir.OptionalIntegerAttr(attrs.SubwordOffset)).
		Flag("unsignedA", attrs.UnsignedA).
		Flag("unsignedB", attrs.UnsignedB).
		Flag("clamp", attrs.Clamp).
		Results(destType).
		Done())
}
