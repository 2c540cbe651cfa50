package amdgpu_test

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/require"

	"github.com/gomlir/gomlir/dialects/amdgpu"
	"github.com/gomlir/gomlir/mlir"
	"github.com/gomlir/gomlir/mlir/mlirtest"
)

func TestMFMA(t *testing.T) {
	t.Run("required attributes only", func(t *testing.T) {
		rec := &mlirtest.Recorder{}
		b := amdgpu.New(rec)
		must.M1(b.MFMA(noLoc, typ("vector<4xf32>"), value("a"), value("b"), value("c"),
			amdgpu.MFMAAttrs{M: 32, N: 32, K: 8, Blocks: 1}))

		state := rec.Last(t)
		require.Equal(t, "amdgpu.mfma", state.Name)
		require.Equal(t, []mlir.Value{value("a"), value("b"), value("c")}, state.Operands)
		require.Equal(t, []mlir.Type{typ("vector<4xf32>")}, state.ResultTypes)
		require.Equal(t, []mlir.NamedAttribute{
			{Name: "m", Value: mlir.IntegerAttr(32)},
			{Name: "n", Value: mlir.IntegerAttr(32)},
			{Name: "k", Value: mlir.IntegerAttr(8)},
			{Name: "blocks", Value: mlir.IntegerAttr(1)},
		}, state.Attributes)
	})

	t.Run("modifiers", func(t *testing.T) {
		rec := &mlirtest.Recorder{}
		b := amdgpu.New(rec)
		must.M1(b.MFMA(noLoc, typ("vector<16xf32>"), value("a"), value("b"), value("c"),
			amdgpu.MFMAAttrs{
				M: 16, N: 16, K: 4, Blocks: 4,
				CBSZ:            mlir.Some[int32](2),
				ABID:            mlir.Some[int32](1),
				BLGP:            mlir.Some(amdgpu.MFMAPermBBcastFirst32),
				ReducePrecision: true,
				NegateA:         true,
			}))

		state := rec.Last(t)
		mlirtest.RequireAttr(t, state, "cbsz", mlir.IntegerAttr(2))
		mlirtest.RequireAttr(t, state, "abid", mlir.IntegerAttr(1))
		mlirtest.RequireAttr(t, state, "blgp", mlir.EnumAttr{Symbol: "bcast_first_32", Case: 1})
		mlirtest.RequireAttr(t, state, "reducePrecision", mlir.UnitAttr{})
		mlirtest.RequireAttr(t, state, "negateA", mlir.UnitAttr{})
		mlirtest.RequireNoAttr(t, state, "negateB")
		mlirtest.RequireNoAttr(t, state, "negateC")
	})
}

func TestWMMA(t *testing.T) {
	rec := &mlirtest.Recorder{}
	b := amdgpu.New(rec)
	must.M1(b.WMMA(noLoc, typ("vector<8xf16>"), value("a"), value("b"), value("c"),
		amdgpu.WMMAAttrs{SubwordOffset: mlir.Some[int32](1), Clamp: true}))

	state := rec.Last(t)
	require.Equal(t, "amdgpu.wmma", state.Name)
	require.Equal(t, []mlir.Value{value("a"), value("b"), value("c")}, state.Operands)
	mlirtest.RequireAttr(t, state, "subwordOffset", mlir.IntegerAttr(1))
	mlirtest.RequireAttr(t, state, "clamp", mlir.UnitAttr{})
	mlirtest.RequireNoAttr(t, state, "unsignedA")
	mlirtest.RequireNoAttr(t, state, "unsignedB")

	// All modifiers at defaults: no attributes at all.
	must.M1(b.WMMA(noLoc, typ("vector<8xf16>"), value("a"), value("b"), value("c"),
		amdgpu.WMMAAttrs{}))
	require.Empty(t, rec.Last(t).Attributes)
}

func TestMFMAPermBStrings(t *testing.T) {
	require.Equal(t, "none", amdgpu.MFMAPermBNone.String())
	require.Equal(t, "rotate_16_right", amdgpu.MFMAPermBRotate16Right.String())
	perm := must.M1(amdgpu.MFMAPermBString("bcast_fourth_16"))
	require.Equal(t, amdgpu.MFMAPermBBcastFourth16, perm)
}
