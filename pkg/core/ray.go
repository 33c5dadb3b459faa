package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// InvalidID marks an unset geometry, primitive or instance identifier.
// A ray whose GeomID equals InvalidID carries no hit.
const InvalidID = ^uint32(0)

// Ray is a single ray with its running nearest-hit state. TFar acts as the
// current nearest-hit distance: every committed hit lowers it, so it is
// monotonically non-increasing within one traversal. A ray is owned by the
// thread that dispatched it; the intersectors never share it across tasks.
type Ray struct {
	Org   mgl32.Vec3 // ray origin
	Dir   mgl32.Vec3 // ray direction, not necessarily normalized
	TNear float32    // start of the valid parameter range
	TFar  float32    // end of the valid range; nearest hit distance so far

	// Hit state, written on commit.
	U, V   float32    // barycentric coordinates of the hit
	Ng     mgl32.Vec3 // unnormalized geometric normal at the hit
	GeomID uint32     // geometry of the hit, InvalidID if none
	PrimID uint32     // primitive of the hit
	InstID uint32     // instance of the hit
}

// NewRay creates a ray over [tnear, tfar) with no hit recorded.
func NewRay(org, dir mgl32.Vec3, tnear, tfar float32) Ray {
	return Ray{
		Org:    org,
		Dir:    dir,
		TNear:  tnear,
		TFar:   tfar,
		GeomID: InvalidID,
		PrimID: InvalidID,
		InstID: InvalidID,
	}
}

// NewInfiniteRay creates a ray with an unbounded far distance.
func NewInfiniteRay(org, dir mgl32.Vec3) Ray {
	return NewRay(org, dir, 0, math32.Inf(1))
}

// At returns the point at parameter t along the ray.
func (r *Ray) At(t float32) mgl32.Vec3 {
	return r.Org.Add(r.Dir.Mul(t))
}

// HasHit reports whether a hit has been committed to the ray.
func (r *Ray) HasHit() bool {
	return r.GeomID != InvalidID
}
