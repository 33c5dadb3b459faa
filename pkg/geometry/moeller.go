package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// moellerEpsilon rejects near-parallel rays: determinants smaller in
// magnitude denote a ray lying in the triangle's plane. The test is
// double-sided, so the determinant's sign is otherwise free.
const moellerEpsilon = 1e-18

// Moeller implements the Möller–Trumbore formulation of the ray-quad test.
type Moeller struct{}

// Intersect8 evaluates both triangle halves of four quads against one ray.
func (Moeller) Intersect8(org, dir wide.Vec3x8, tnear, tfar wide.F32x8, v0, v1, v2, v3 wide.Vec3x4) QuadHit {
	a, b, c := joinHalves(v0, v1, v2, v3)

	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)

	one := wide.SplatF32x8(1)
	zero := wide.SplatF32x8(0)
	rcpDet := one.Div(det)

	tvec := org.Sub(a)
	u := tvec.Dot(pvec).Mul(rcpDet)
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec).Mul(rcpDet)
	t := e2.Dot(qvec).Mul(rcpDet)

	valid := det.Abs().Ge(wide.SplatF32x8(moellerEpsilon)).
		And(u.Ge(zero)).
		And(v.Ge(zero)).
		And(u.Add(v).Le(one)).
		And(t.Ge(tnear)).
		And(t.Lt(tfar))

	u, v = remapSecondHalf(u, v)
	return QuadHit{Valid: valid, T: t, U: u, V: v, Ng: e1.Cross(e2)}
}

// IntersectHalfK evaluates one scalar triangle against the packet lanes.
func (Moeller) IntersectHalfK(p *core.RayPacket, active wide.B32x4, a, b, c mgl32.Vec3, remap bool) TriHitK {
	org := wide.Vec3x4{X: p.OrgX, Y: p.OrgY, Z: p.OrgZ}
	dir := wide.Vec3x4{X: p.DirX, Y: p.DirY, Z: p.DirZ}

	e1 := wide.SplatVec3(b.Sub(a))
	e2 := wide.SplatVec3(c.Sub(a))
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)

	one := wide.SplatF32(1)
	zero := wide.SplatF32(0)
	rcpDet := one.Div(det)

	tvec := org.Sub(wide.SplatVec3(a))
	u := tvec.Dot(pvec).Mul(rcpDet)
	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec).Mul(rcpDet)
	t := e2.Dot(qvec).Mul(rcpDet)

	valid := active.
		And(det.Abs().Ge(wide.SplatF32(moellerEpsilon))).
		And(u.Ge(zero)).
		And(v.Ge(zero)).
		And(u.Add(v).Le(one)).
		And(t.Ge(p.TNear)).
		And(t.Lt(p.TFar))

	if remap {
		u = one.Sub(u)
		v = one.Sub(v)
	}
	ng := b.Sub(a).Cross(c.Sub(a))
	return TriHitK{Valid: valid, T: t, U: u, V: v, Ng: ng}
}
