package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// A quad is tested as two triangles sharing the diagonal V1V3:
// (V0,V1,V3) and (V2,V3,V1). The single-ray kernels evaluate all four
// quads' halves as one 8-lane step: candidate lane l covers quad lane
// l&3, with lanes 0-3 the first halves and 4-7 the second halves.
// Second-half barycentrics are remapped (u'=1-u, v'=1-v) so both halves
// share one (u,v) parameterisation of the quad.

// QuadHit is the candidate set a kernel produces for one quad record
// against a single ray.
type QuadHit struct {
	Valid   wide.B32x8
	T, U, V wide.F32x8
	Ng      wide.Vec3x8
}

// TriHitK is the candidate set a kernel produces for one scalar triangle
// against the lanes of a ray packet. The geometric normal is a property
// of the triangle, so it is shared across lanes.
type TriHitK struct {
	Valid   wide.B32x4
	T, U, V wide.F32x4
	Ng      mgl32.Vec3
}

// QuadKernel is the numeric kernel contract shared by the Möller–Trumbore
// and Plücker formulations. Implementations are stateless value types so
// the intersectors monomorphise over them.
type QuadKernel interface {
	// Intersect8 tests a single ray against the eight triangle halves of
	// one gathered quad record.
	Intersect8(org, dir wide.Vec3x8, tnear, tfar wide.F32x8, v0, v1, v2, v3 wide.Vec3x4) QuadHit

	// IntersectHalfK tests the packet lanes selected by active against one
	// scalar triangle (a,b,c). remap requests second-half barycentric
	// remapping.
	IntersectHalfK(p *core.RayPacket, active wide.B32x4, a, b, c mgl32.Vec3, remap bool) TriHitK
}

// joinHalves packs the four quads' two triangle halves into 8-lane corner
// vectors: (V0,V1,V3) in the low lanes, (V2,V3,V1) in the high lanes.
func joinHalves(v0, v1, v2, v3 wide.Vec3x4) (a, b, c wide.Vec3x8) {
	a = wide.JoinVec3x4(v0, v2)
	b = wide.JoinVec3x4(v1, v3)
	c = wide.JoinVec3x4(v3, v1)
	return a, b, c
}

// remapSecondHalf rewrites lanes 4-7 of (u,v) to the quad
// parameterisation.
func remapSecondHalf(u, v wide.F32x8) (wide.F32x8, wide.F32x8) {
	one := wide.SplatF32x8(1)
	var flip wide.B32x8
	for l := QuadWidth; l < 2*QuadWidth; l++ {
		flip[l] = true
	}
	return flip.Select(one.Sub(u), u), flip.Select(one.Sub(v), v)
}

// selectNearest returns the valid candidate lane with the smallest t,
// preferring the lowest lane index on ties, or -1 if none remain.
func selectNearest(h *QuadHit) int {
	best := -1
	for l := 0; l < 2*QuadWidth; l++ {
		if h.Valid[l] && (best < 0 || h.T[l] < h.T[best]) {
			best = l
		}
	}
	return best
}
