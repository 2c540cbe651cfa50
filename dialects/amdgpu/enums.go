package amdgpu

import (
	"github.com/gomlir/gomlir/mlir"
)

// MFMAPermB selects the lane permutation applied to the B matrix of an
// MFMA operation (the blgp modifier of the hardware instruction).
type MFMAPermB int

//go:generate go tool enumer -type=MFMAPermB -trimprefix=MFMAPermB -transform=snake -output=gen_mfmapermb_enumer.go enums.go

const (
	// MFMAPermBNone applies no permutation.
	MFMAPermBNone MFMAPermB = iota

	// MFMAPermBBcastFirst32 broadcasts the first 32 lanes.
	MFMAPermBBcastFirst32

	// MFMAPermBBcastSecond32 broadcasts the second 32 lanes.
	MFMAPermBBcastSecond32

	// MFMAPermBRotate16Right rotates the lanes right by 16.
	MFMAPermBRotate16Right

	// MFMAPermBBcastFirst16 broadcasts the first 16 lanes.
	MFMAPermBBcastFirst16

	// MFMAPermBBcastSecond16 broadcasts the second 16 lanes.
	MFMAPermBBcastSecond16

	// MFMAPermBBcastThird16 broadcasts the third 16 lanes.
	MFMAPermBBcastThird16

	// MFMAPermBBcastFourth16 broadcasts the fourth 16 lanes.
	MFMAPermBBcastFourth16
)

// attr lifts an optional permutation into an optional enumerated
// attribute value, preserving absence.
func (p MFMAPermB) attr() mlir.Attribute {
	return mlir.EnumAttr{Symbol: p.String(), Case: int64(p)}
}

func optionalPermAttr(o mlir.Optional[MFMAPermB]) mlir.Optional[mlir.Attribute] {
	if !o.Present() {
		return mlir.None[mlir.Attribute]()
	}
	return mlir.Some(o.Value().attr())
}
