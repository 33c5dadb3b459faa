package core

import "github.com/go-gl/mathgl/mgl32"

// Hit describes a tentative intersection handed to a filter callback before
// it is committed to the ray.
type Hit struct {
	T      float32    // hit distance along the ray
	U, V   float32    // barycentric coordinates
	Ng     mgl32.Vec3 // unnormalized geometric normal
	GeomID uint32
	PrimID uint32
	InstID uint32
}

// FilterFunc is a user intersection filter. It is called with a tentative
// hit; returning false rejects the hit and traversal continues as if the
// primitive had been missed. Filters run on the dispatching thread for that
// ray but may be called concurrently for different rays, so they must be
// thread-safe if rays are traced in parallel. A filter may call ctx.Abort
// to terminate the whole traversal.
type FilterFunc func(hit *Hit, ctx *IntersectContext) bool
