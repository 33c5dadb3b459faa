package geometry

import (
	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// The epilogues are the only place user code re-enters the intersection
// kernels. They consult the filter registry keyed by geomID, then either
// commit the candidate to the ray or mask it off and let lane selection
// continue.

// epilogIntersect1 commits the nearest surviving candidate to the ray.
// Returns true if a hit was committed.
func epilogIntersect1(h *QuadHit, ray *core.Ray, ctx *core.IntersectContext, quad *Quad4, filter bool) bool {
	for {
		lane := selectNearest(h)
		if lane < 0 {
			return false
		}
		q := lane & (QuadWidth - 1)
		geomID := quad.GeomIDs[q]
		primID := quad.PrimIDs[q]

		if filter {
			if f := ctx.LookupFilter(geomID); f != nil {
				hit := core.Hit{
					T: h.T[lane], U: h.U[lane], V: h.V[lane],
					Ng:     h.Ng.Lane(lane),
					GeomID: geomID, PrimID: primID, InstID: ctx.InstID,
				}
				if !f(&hit, ctx) {
					h.Valid[lane] = false
					if ctx.Aborted() {
						return false
					}
					continue
				}
			}
		}

		ray.TFar = h.T[lane]
		ray.U = h.U[lane]
		ray.V = h.V[lane]
		ray.Ng = h.Ng.Lane(lane)
		ray.GeomID = geomID
		ray.PrimID = primID
		ray.InstID = ctx.InstID
		return true
	}
}

// epilogOccluded1 reports whether any surviving candidate passes the
// opacity test.
func epilogOccluded1(h *QuadHit, ctx *core.IntersectContext, quad *Quad4, filter bool) bool {
	for lane := 0; lane < 2*QuadWidth; lane++ {
		if !h.Valid[lane] {
			continue
		}
		q := lane & (QuadWidth - 1)
		geomID := quad.GeomIDs[q]

		if filter {
			if f := ctx.LookupFilter(geomID); f != nil {
				hit := core.Hit{
					T: h.T[lane], U: h.U[lane], V: h.V[lane],
					Ng:     h.Ng.Lane(lane),
					GeomID: geomID, PrimID: quad.PrimIDs[q], InstID: ctx.InstID,
				}
				if !f(&hit, ctx) {
					if ctx.Aborted() {
						return false
					}
					continue
				}
			}
		}
		return true
	}
	return false
}

// epilogIntersectK commits per-lane candidates of one triangle half into
// the packet.
func epilogIntersectK(h *TriHitK, p *core.RayPacket, ctx *core.IntersectContext, geomID, primID uint32, filter bool) {
	var f core.FilterFunc
	if filter {
		f = ctx.LookupFilter(geomID)
	}
	for l := 0; l < core.PacketWidth; l++ {
		if !h.Valid[l] {
			continue
		}
		if f != nil {
			hit := core.Hit{
				T: h.T[l], U: h.U[l], V: h.V[l],
				Ng:     h.Ng,
				GeomID: geomID, PrimID: primID, InstID: ctx.InstID,
			}
			if !f(&hit, ctx) {
				if ctx.Aborted() {
					return
				}
				continue
			}
		}
		p.TFar[l] = h.T[l]
		p.U[l] = h.U[l]
		p.V[l] = h.V[l]
		p.NgX[l], p.NgY[l], p.NgZ[l] = h.Ng.X(), h.Ng.Y(), h.Ng.Z()
		p.GeomID[l] = geomID
		p.PrimID[l] = primID
		p.InstID[l] = ctx.InstID
	}
}

// epilogOccludedK returns the lanes of one triangle half that pass the
// opacity test.
func epilogOccludedK(h *TriHitK, ctx *core.IntersectContext, geomID, primID uint32, filter bool) wide.B32x4 {
	var occluded wide.B32x4
	var f core.FilterFunc
	if filter {
		f = ctx.LookupFilter(geomID)
	}
	for l := 0; l < core.PacketWidth; l++ {
		if !h.Valid[l] {
			continue
		}
		if f != nil {
			hit := core.Hit{
				T: h.T[l], U: h.U[l], V: h.V[l],
				Ng:     h.Ng,
				GeomID: geomID, PrimID: primID, InstID: ctx.InstID,
			}
			if !f(&hit, ctx) {
				if ctx.Aborted() {
					return occluded
				}
				continue
			}
		}
		occluded[l] = true
	}
	return occluded
}
