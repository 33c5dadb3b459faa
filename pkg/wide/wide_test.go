package wide

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestF32x4_Arithmetic(t *testing.T) {
	a := F32x4{1, 2, 3, 4}
	b := F32x4{4, 3, 2, 1}

	if got := a.Add(b); got != (F32x4{5, 5, 5, 5}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (F32x4{-3, -1, 1, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(b); got != (F32x4{4, 6, 6, 4}) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.MulAdd(b, SplatF32(1)); got != (F32x4{5, 7, 7, 5}) {
		t.Errorf("MulAdd: got %v", got)
	}
	if got := a.Min(b); got != (F32x4{1, 2, 2, 1}) {
		t.Errorf("Min: got %v", got)
	}
	if got := (F32x4{-1, 2, -3, 4}).Abs(); got != (F32x4{1, 2, 3, 4}) {
		t.Errorf("Abs: got %v", got)
	}
}

func TestF32x4_CompareAndSelect(t *testing.T) {
	a := F32x4{1, 5, 3, 7}
	b := F32x4{4, 4, 4, 4}

	lt := a.Lt(b)
	if lt != (B32x4{true, false, true, false}) {
		t.Errorf("Lt: got %v", lt)
	}
	if got := lt.Select(a, b); got != (F32x4{1, 4, 3, 4}) {
		t.Errorf("Select: got %v", got)
	}
	if lt.Count() != 2 {
		t.Errorf("Count: got %d", lt.Count())
	}
	if !lt.Any() || lt.All() {
		t.Errorf("Any/All: got %v/%v", lt.Any(), lt.All())
	}
	if got := lt.AndNot(B32x4{true, true, false, false}); got != (B32x4{false, false, true, false}) {
		t.Errorf("AndNot: got %v", got)
	}
}

func TestVec3x4_CrossMatchesScalar(t *testing.T) {
	var a, b Vec3x4
	points := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {1, 2, 3}, {-2, 0.5, 4}}
	others := []mgl32.Vec3{{0, 1, 0}, {0, 0, 1}, {3, 2, 1}, {1, 1, 1}}
	for i := range points {
		a.SetLane(i, points[i])
		b.SetLane(i, others[i])
	}

	cross := a.Cross(b)
	dot := a.Dot(b)
	for i := range points {
		if want := points[i].Cross(others[i]); cross.Lane(i) != want {
			t.Errorf("lane %d: Cross got %v, want %v", i, cross.Lane(i), want)
		}
		if want := points[i].Dot(others[i]); dot[i] != want {
			t.Errorf("lane %d: Dot got %v, want %v", i, dot[i], want)
		}
	}
}

func TestF32x8_JoinSplit(t *testing.T) {
	lo := F32x4{1, 2, 3, 4}
	hi := F32x4{5, 6, 7, 8}

	joined := JoinF32x4(lo, hi)
	if joined != (F32x8{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("JoinF32x4: got %v", joined)
	}
	gotLo, gotHi := joined.Split()
	if gotLo != lo || gotHi != hi {
		t.Errorf("Split: got %v %v", gotLo, gotHi)
	}
}

func TestB32x8_SelectHalves(t *testing.T) {
	mask := JoinB32x4(SplatB32(false), SplatB32(true))
	a := SplatF32x8(1)
	b := SplatF32x8(2)

	got := mask.Select(a, b)
	if got != (F32x8{2, 2, 2, 2, 1, 1, 1, 1}) {
		t.Errorf("Select: got %v", got)
	}
}
