package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// plueckerUlp scales the sign-consistency band of the edge tests with the
// triangle's projected area. Edge products within the band count as lying
// on the edge, so an edge shared by two triangle halves accepts on both
// sides with opposite signs and never opens a gap.
const plueckerUlp = 1.1920929e-07

// Pluecker implements the Plücker edge-product formulation of the
// ray-quad test. Inside/outside is decided by three signed ray-edge
// products per triangle; the watertightness of the shared diagonal follows
// from the sign flip between the halves' reversed diagonal edges.
type Pluecker struct{}

// Intersect8 evaluates both triangle halves of four quads against one ray.
func (Pluecker) Intersect8(org, dir wide.Vec3x8, tnear, tfar wide.F32x8, v0, v1, v2, v3 wide.Vec3x4) QuadHit {
	a, b, c := joinHalves(v0, v1, v2, v3)

	// Vertices relative to the ray origin.
	ra := a.Sub(org)
	rb := b.Sub(org)
	rc := c.Sub(org)

	// Signed edge products against the ray direction. U is the edge
	// opposite vertex b, V opposite c, W opposite a.
	uu := rc.Sub(ra).Cross(rc.Add(ra)).Dot(dir)
	vv := ra.Sub(rb).Cross(ra.Add(rb)).Dot(dir)
	ww := rb.Sub(rc).Cross(rb.Add(rc)).Dot(dir)
	uvw := uu.Add(vv).Add(ww)

	eps := uvw.Abs().Mul(wide.SplatF32x8(plueckerUlp))
	minE := uu.Min(vv).Min(ww)
	maxE := uu.Max(vv).Max(ww)
	inside := minE.Ge(eps.Neg()).Or(maxE.Le(eps))

	ng := b.Sub(a).Cross(c.Sub(a))
	den := ng.Dot(dir)
	tNum := ra.Dot(ng)
	t := tNum.Div(den)

	zero := wide.SplatF32x8(0)
	valid := inside.
		And(den.Ne(zero)).
		And(uvw.Ne(zero)).
		And(t.Ge(tnear)).
		And(t.Lt(tfar))

	rcpUVW := wide.SplatF32x8(1).Div(uvw)
	u := uu.Mul(rcpUVW)
	v := vv.Mul(rcpUVW)
	u, v = remapSecondHalf(u, v)
	return QuadHit{Valid: valid, T: t, U: u, V: v, Ng: ng}
}

// IntersectHalfK evaluates one scalar triangle against the packet lanes.
func (Pluecker) IntersectHalfK(p *core.RayPacket, active wide.B32x4, a, b, c mgl32.Vec3, remap bool) TriHitK {
	org := wide.Vec3x4{X: p.OrgX, Y: p.OrgY, Z: p.OrgZ}
	dir := wide.Vec3x4{X: p.DirX, Y: p.DirY, Z: p.DirZ}

	ra := wide.SplatVec3(a).Sub(org)
	rb := wide.SplatVec3(b).Sub(org)
	rc := wide.SplatVec3(c).Sub(org)

	uu := rc.Sub(ra).Cross(rc.Add(ra)).Dot(dir)
	vv := ra.Sub(rb).Cross(ra.Add(rb)).Dot(dir)
	ww := rb.Sub(rc).Cross(rb.Add(rc)).Dot(dir)
	uvw := uu.Add(vv).Add(ww)

	eps := uvw.Abs().Mul(wide.SplatF32(plueckerUlp))
	minE := uu.Min(vv).Min(ww)
	maxE := uu.Max(vv).Max(ww)
	inside := minE.Ge(eps.Neg()).Or(maxE.Le(eps))

	ngScalar := b.Sub(a).Cross(c.Sub(a))
	ng := wide.SplatVec3(ngScalar)
	den := ng.Dot(dir)
	t := ra.Dot(ng).Div(den)

	zero := wide.SplatF32(0)
	valid := active.
		And(inside).
		And(den.Ne(zero)).
		And(uvw.Ne(zero)).
		And(t.Ge(p.TNear)).
		And(t.Lt(p.TFar))

	rcpUVW := wide.SplatF32(1).Div(uvw)
	u := uu.Mul(rcpUVW)
	v := vv.Mul(rcpUVW)
	if remap {
		one := wide.SplatF32(1)
		u = one.Sub(u)
		v = one.Sub(v)
	}
	return TriHitK{Valid: valid, T: t, U: u, V: v, Ng: ngScalar}
}
