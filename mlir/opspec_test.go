package mlir_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/mlir"
)

// value is a stand-in for an opaque SSA value handle.
type value string

var loadSpec = mlir.OpSpec{
	Name: "test.load",
	Operands: []mlir.OperandGroup{
		{Name: "memref", Kind: mlir.OperandSingle},
		{Name: "indices", Kind: mlir.OperandVariadic},
		{Name: "offset", Kind: mlir.OperandOptional},
	},
}

func TestStateBuilderPacking(t *testing.T) {
	runTestCase := func(name string, offset mlir.Optional[mlir.Value], indices []mlir.Value, wantOperands int, wantSizes []int32) {
		t.Run(name, func(t *testing.T) {
			state := must.M1(loadSpec.Build(nil).
				Operand(value("memref")).
				Variadic(indices...).
				OptionalOperand(offset).
				Done())
			require.Equal(t, "test.load", state.Name)
			require.Len(t, state.Operands, wantOperands)
			attr, found := state.Attr(mlir.OperandSegmentSizesAttrName)
			require.True(t, found)
			require.Equal(t, mlir.DenseI32ArrayAttr(wantSizes), attr)
		})
	}

	runTestCase("no indices, no offset", mlir.None[mlir.Value](), nil, 1, []int32{1, 0, 0})
	runTestCase("two indices, no offset", mlir.None[mlir.Value](),
		[]mlir.Value{value("i"), value("j")}, 3, []int32{1, 2, 0})
	runTestCase("two indices with offset", mlir.Some[mlir.Value](value("off")),
		[]mlir.Value{value("i"), value("j")}, 4, []int32{1, 2, 1})
}

func TestStateBuilderOperandOrder(t *testing.T) {
	// Required operand packed where the variadic group is declared.
	spec := loadSpec
	_, err := spec.Build(nil).
		Operand(value("memref")).
		Operand(value("i")).
		Done()
	require.ErrorContains(t, err, "declared variadic, packed as single")

	// More groups than declared.
	_, err = spec.Build(nil).
		Operand(value("memref")).
		Variadic().
		OptionalOperand(mlir.None[mlir.Value]()).
		Operand(value("extra")).
		Done()
	require.ErrorContains(t, err, "more operand groups packed")

	// Fewer groups than declared.
	_, err = spec.Build(nil).
		Operand(value("memref")).
		Done()
	require.ErrorContains(t, err, "1 of 3 declared operand groups packed")
}

func TestSegmentSizesOnlyWhenAmbiguous(t *testing.T) {
	// A single variable group splits unambiguously, no segment attribute.
	spec := mlir.OpSpec{
		Name: "test.round",
		Operands: []mlir.OperandGroup{
			{Name: "source", Kind: mlir.OperandSingle},
			{Name: "existing", Kind: mlir.OperandOptional},
		},
	}
	state := must.M1(spec.Build(nil).
		Operand(value("src")).
		OptionalOperand(mlir.None[mlir.Value]()).
		Done())
	_, found := state.Attr(mlir.OperandSegmentSizesAttrName)
	require.False(t, found)

	// No variable groups at all.
	spec = mlir.OpSpec{
		Name: "test.mul",
		Operands: []mlir.OperandGroup{
			{Name: "lhs", Kind: mlir.OperandSingle},
			{Name: "rhs", Kind: mlir.OperandSingle},
		},
	}
	state = must.M1(spec.Build(nil).
		Operand(value("a")).
		Operand(value("b")).
		Done())
	_, found = state.Attr(mlir.OperandSegmentSizesAttrName)
	require.False(t, found)
	require.Len(t, state.Operands, 2)
}

func TestStateBuilderAttrs(t *testing.T) {
	spec := mlir.OpSpec{Name: "test.attrs"}
	state := must.M1(spec.Build(nil).
		Attr("m", mlir.IntegerAttr(16)).
		OptionalAttr("cbsz", mlir.OptionalIntegerAttr(mlir.Some[int32](2))).
		OptionalAttr("abid", mlir.OptionalIntegerAttr(mlir.None[int32]())).
		OptionalAttr("bounded", mlir.OptionalBoolAttr(mlir.Some(true))).
		Flag("negateA", true).
		Flag("negateB", false).
		Done())

	// Present attributes keep declaration order; absent ones leave no entry.
	require.Equal(t, []mlir.NamedAttribute{
		{Name: "m", Value: mlir.IntegerAttr(16)},
		{Name: "cbsz", Value: mlir.IntegerAttr(2)},
		{Name: "bounded", Value: mlir.BoolAttr(true)},
		{Name: "negateA", Value: mlir.UnitAttr{}},
	}, state.Attributes)
}

func TestStateBuilderResults(t *testing.T) {
	spec := mlir.OpSpec{Name: "test.none"}
	state := must.M1(spec.Build(nil).Done())
	require.Empty(t, state.Operands)
	require.Empty(t, state.ResultTypes)
	require.Empty(t, state.Attributes)
	require.Empty(t, state.Regions)
	require.Empty(t, state.Successors)
	require.False(t, state.InferResultTypes)

	spec = mlir.OpSpec{Name: "test.one"}
	state = must.M1(spec.Build(nil).Results("f32").Done())
	require.Equal(t, []mlir.Type{"f32"}, state.ResultTypes)
}
