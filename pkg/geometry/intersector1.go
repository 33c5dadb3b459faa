package geometry

import (
	"math/bits"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// Intersector1 tests a single ray against Quad4 records with a fixed
// kernel variant, constructed with NewMoellerIntersector1 or
// NewPlueckerIntersector1. filter controls whether registered intersection
// filters are consulted; the zero value has filtering off.
type Intersector1[K QuadKernel] struct {
	kernel K
	filter bool
}

// NewMoellerIntersector1 returns a single-ray intersector using the
// Möller–Trumbore kernel.
func NewMoellerIntersector1(filter bool) Intersector1[Moeller] {
	return Intersector1[Moeller]{filter: filter}
}

// NewPlueckerIntersector1 returns a single-ray intersector using the
// Plücker kernel.
func NewPlueckerIntersector1(filter bool) Intersector1[Pluecker] {
	return Intersector1[Pluecker]{filter: filter}
}

// Intersect tests the ray against the record's quads and commits the
// nearest accepted hit, lowering ray.TFar.
func (it Intersector1[K]) Intersect(pre *Precalc, ray *core.Ray, ctx *core.IntersectContext, quad *Quad4) {
	pre.Stats.AddNormal(1, 1)
	v0, v1, v2, v3 := quad.Gather(ctx.Scene)
	hit := it.kernel.Intersect8(pre.Org, pre.Dir,
		wide.SplatF32x8(ray.TNear), wide.SplatF32x8(ray.TFar), v0, v1, v2, v3)
	maskInvalidLanes(&hit, quad)
	epilogIntersect1(&hit, ray, ctx, quad, it.filter)
}

// Occluded reports whether any quad in the record occludes the ray. The
// ray is not modified.
func (it Intersector1[K]) Occluded(pre *Precalc, ray *core.Ray, ctx *core.IntersectContext, quad *Quad4) bool {
	pre.Stats.AddShadow(1, 1)
	v0, v1, v2, v3 := quad.Gather(ctx.Scene)
	hit := it.kernel.Intersect8(pre.Org, pre.Dir,
		wide.SplatF32x8(ray.TNear), wide.SplatF32x8(ray.TFar), v0, v1, v2, v3)
	maskInvalidLanes(&hit, quad)
	return epilogOccluded1(&hit, ctx, quad, it.filter)
}

// IntersectBatch tests the rays selected by the valid bitmask against
// every record in quads and returns a bitmask of rays whose TFar strictly
// decreased.
func (it Intersector1[K]) IntersectBatch(pres []Precalc, valid uint64, rays []*core.Ray, ctx *core.IntersectContext, quads []Quad4) uint64 {
	var committed uint64
	for m := valid; m != 0; {
		i := bits.TrailingZeros64(m)
		m &^= 1 << i
		oldFar := rays[i].TFar
		for n := range quads {
			if ctx.Aborted() {
				break
			}
			it.Intersect(&pres[i], rays[i], ctx, &quads[n])
		}
		if rays[i].TFar < oldFar {
			committed |= 1 << i
		}
	}
	return committed
}

// OccludedBatch tests the rays selected by the valid bitmask against every
// record in quads and returns a bitmask of occluded rays.
func (it Intersector1[K]) OccludedBatch(pres []Precalc, valid uint64, rays []*core.Ray, ctx *core.IntersectContext, quads []Quad4) uint64 {
	var occluded uint64
	for m := valid; m != 0; {
		i := bits.TrailingZeros64(m)
		m &^= 1 << i
		for n := range quads {
			if ctx.Aborted() {
				break
			}
			if it.Occluded(&pres[i], rays[i], ctx, &quads[n]) {
				occluded |= 1 << i
				break
			}
		}
	}
	return occluded
}

// maskInvalidLanes clears candidates whose quad record lane is padding.
func maskInvalidLanes(h *QuadHit, quad *Quad4) {
	for l := 0; l < 2*QuadWidth; l++ {
		if h.Valid[l] && !quad.Valid(l&(QuadWidth-1)) {
			h.Valid[l] = false
		}
	}
}
