package geometry

import (
	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// IntersectorK tests a packet of rays against Quad4 records: the outer
// axis iterates the record's valid quad lanes one scalar primitive at a
// time, the inner axis evaluates all packet lanes at once.
type IntersectorK[K QuadKernel] struct {
	kernel K
	filter bool
}

// NewMoellerIntersectorK returns a packet intersector using the
// Möller–Trumbore kernel.
func NewMoellerIntersectorK(filter bool) IntersectorK[Moeller] {
	return IntersectorK[Moeller]{filter: filter}
}

// NewPlueckerIntersectorK returns a packet intersector using the Plücker
// kernel.
func NewPlueckerIntersectorK(filter bool) IntersectorK[Pluecker] {
	return IntersectorK[Pluecker]{filter: filter}
}

// IntersectPacket tests the packet lanes selected by valid against the
// record's quads, committing nearest hits per lane.
func (it IntersectorK[K]) IntersectPacket(valid wide.B32x4, pre *PacketPrecalc, p *core.RayPacket, ctx *core.IntersectContext, quad *Quad4) {
	for i := 0; i < quad.MaxSize(); i++ {
		if !quad.Valid(i) {
			break
		}
		if ctx.Aborted() {
			return
		}
		pre.Stats.AddNormal(valid.Count(), 1)
		a, b, c, d := quad.GatherLane(i, ctx.Scene)
		geomID, primID := quad.GeomIDs[i], quad.PrimIDs[i]

		hitA := it.kernel.IntersectHalfK(p, valid, a, b, d, false)
		epilogIntersectK(&hitA, p, ctx, geomID, primID, it.filter)
		hitB := it.kernel.IntersectHalfK(p, valid, c, d, b, true)
		epilogIntersectK(&hitB, p, ctx, geomID, primID, it.filter)
	}
}

// OccludedPacket tests the packet lanes selected by valid and returns the
// mask of lanes found occluded. It breaks out of the primitive loop as
// soon as no live lanes remain.
func (it IntersectorK[K]) OccludedPacket(valid wide.B32x4, pre *PacketPrecalc, p *core.RayPacket, ctx *core.IntersectContext, quad *Quad4) wide.B32x4 {
	live := valid
	for i := 0; i < quad.MaxSize() && live.Any(); i++ {
		if !quad.Valid(i) {
			break
		}
		if ctx.Aborted() {
			break
		}
		pre.Stats.AddShadow(live.Count(), 1)
		a, b, c, d := quad.GatherLane(i, ctx.Scene)
		geomID, primID := quad.GeomIDs[i], quad.PrimIDs[i]

		hitA := it.kernel.IntersectHalfK(p, live, a, b, d, false)
		live = live.AndNot(epilogOccludedK(&hitA, ctx, geomID, primID, it.filter))
		if !live.Any() {
			break
		}
		hitB := it.kernel.IntersectHalfK(p, live, c, d, b, true)
		live = live.AndNot(epilogOccludedK(&hitB, ctx, geomID, primID, it.filter))
	}
	return valid.AndNot(live)
}

// IntersectLane extracts lane k from the packet and tests it as a single
// ray, writing any committed hit back into the lane.
func (it IntersectorK[K]) IntersectLane(pre *PacketPrecalc, p *core.RayPacket, k int, ctx *core.IntersectContext, quad *Quad4) {
	ray := p.Ray(k)
	single := Intersector1[K]{kernel: it.kernel, filter: it.filter}
	rayPre := NewPrecalc(&ray)
	single.Intersect(&rayPre, &ray, ctx, quad)
	pre.Stats.Normal.TravPrims += rayPre.Stats.Normal.TravPrims
	pre.Stats.Normal.TravRays += rayPre.Stats.Normal.TravRays
	p.CommitRay(k, ray)
}

// OccludedLane extracts lane k from the packet and tests it as a single
// ray.
func (it IntersectorK[K]) OccludedLane(pre *PacketPrecalc, p *core.RayPacket, k int, ctx *core.IntersectContext, quad *Quad4) bool {
	ray := p.Ray(k)
	single := Intersector1[K]{kernel: it.kernel, filter: it.filter}
	rayPre := NewPrecalc(&ray)
	occluded := single.Occluded(&rayPre, &ray, ctx, quad)
	pre.Stats.Shadow.TravPrims += rayPre.Stats.Shadow.TravPrims
	pre.Stats.Shadow.TravRays += rayPre.Stats.Shadow.TravRays
	return occluded
}
