package model

import (
	"testing"

	"github.com/sphereforge/dspbptk/geometry"
)

func TestResizeBuildingsGrow(t *testing.T) {
	bp := New()
	bp.Buildings = []Building{{Index: 0}, {Index: 1}}
	bp.ResizeBuildings(5)
	if len(bp.Buildings) != 5 {
		t.Fatalf("len = %d, want 5", len(bp.Buildings))
	}
	if bp.Buildings[0].Index != 0 || bp.Buildings[1].Index != 1 {
		t.Error("ResizeBuildings must preserve existing entries")
	}
}

func TestResizeBuildingsShrink(t *testing.T) {
	bp := New()
	bp.Buildings = []Building{{Index: 0}, {Index: 1}, {Index: 2}}
	bp.ResizeBuildings(1)
	if len(bp.Buildings) != 1 {
		t.Fatalf("len = %d, want 1", len(bp.Buildings))
	}
}

func TestDeepCopyBuildingsOffsetsReferences(t *testing.T) {
	src := []Building{
		{
			Index:            0,
			TempOutputObjIdx: NewRef(1),
			TempInputObjIdx:  NoRef,
			Parameters:       []int32{1, 2, 3},
		},
	}
	dst := make([]Building, 1)
	DeepCopyBuildings(dst, src, 10)

	if dst[0].Index != 10 {
		t.Errorf("Index = %d, want 10", dst[0].Index)
	}
	idx, ok := dst[0].TempOutputObjIdx.Index()
	if !ok || idx != 11 {
		t.Errorf("TempOutputObjIdx = (%d, %v), want (11, true)", idx, ok)
	}
	if !dst[0].TempInputObjIdx.IsNone() {
		t.Error("TempInputObjIdx should remain absent across offsetting")
	}
}

func TestDeepCopyBuildingsClonesParameters(t *testing.T) {
	src := []Building{{Parameters: []int32{7, 8, 9}}}
	dst := make([]Building, 1)
	DeepCopyBuildings(dst, src, 0)

	dst[0].Parameters[0] = 99
	if src[0].Parameters[0] != 7 {
		t.Error("DeepCopyBuildings must not alias the source parameters slice")
	}
}

func TestDeepCopyBuildingsFourWayDuplicate(t *testing.T) {
	src := []Building{{Index: 0, Parameters: []int32{1}}}
	var buildings []Building
	for k := int32(0); k < 4; k++ {
		dst := make([]Building, 1)
		DeepCopyBuildings(dst, src, k)
		dst[0].Translate(float64(k)*10, float64(k)*20)
		buildings = append(buildings, dst[0])
	}

	for k, b := range buildings {
		if b.Index != int32(k) {
			t.Errorf("building %d: Index = %d, want %d", k, b.Index, k)
		}
		if b.LocalOffset.X != float64(k)*10 || b.LocalOffset.Y != float64(k)*20 {
			t.Errorf("building %d: offset = (%v,%v), want (%v,%v)", k, b.LocalOffset.X, b.LocalOffset.Y, float64(k)*10, float64(k)*20)
		}
		for j, other := range buildings {
			if j == k {
				continue
			}
			if &b.Parameters[0] == &other.Parameters[0] {
				t.Errorf("buildings %d and %d alias the same parameters allocation", k, j)
			}
		}
	}
}

func TestFreeDropsAliasing(t *testing.T) {
	bp := New()
	bp.Buildings = []Building{{Parameters: []int32{1, 2}}}
	bp.Areas = []Area{{}}
	bp.ShortDesc = "x"
	bp.Desc = "y"
	bp.Fingerprint = "z"

	bp.Free()

	if bp.Buildings != nil || bp.Areas != nil {
		t.Error("Free must nil Buildings and Areas")
	}
	if bp.ShortDesc != "" || bp.Desc != "" || bp.Fingerprint != "" {
		t.Error("Free must clear descriptor and fingerprint strings")
	}
}

func TestBuildingRotateIdentityNoOp(t *testing.T) {
	m := geometry.RotationFromTarget(geometry.Point{X: 0, Y: 1, Z: 0})
	b := Building{LocalOffset: Vec{X: 12, Y: 34, Z: 5, W: 1}}
	before := b.LocalOffset
	b.Rotate(m)

	const eps = 1e-9
	if diff := b.LocalOffset.X - before.X; diff > eps || diff < -eps {
		t.Errorf("identity rotation changed X: got %v, want %v", b.LocalOffset.X, before.X)
	}
	if diff := b.LocalOffset.Z - before.Z; diff != 0 {
		t.Errorf("altitude must be untouched by rotation: got %v, want %v", b.LocalOffset.Z, before.Z)
	}
}
