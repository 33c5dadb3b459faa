package core

import (
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexSource resolves vertex indices into positions. The scene's vertex
// buffers are shared read-only during a traversal batch.
type VertexSource interface {
	Vertex(geomID, idx uint32) mgl32.Vec3
}

// FilterSource looks up the intersection filter registered for a geometry.
// A nil return means the geometry has no filter and hits commit directly.
type FilterSource interface {
	Filter(geomID uint32) FilterFunc
}

// ContextFlags control per-call intersector behavior.
type ContextFlags uint32

const (
	// FlagSkipFilters suppresses filter callbacks for this traversal even
	// for geometries that have one registered.
	FlagSkipFilters ContextFlags = 1 << iota
)

// IntersectContext carries the scene and user state through a traversal.
// One context may serve many rays; the abort flag is the only mutable field
// and is safe to set from a filter callback.
type IntersectContext struct {
	Scene    VertexSource
	Filters  FilterSource
	Flags    ContextFlags
	InstID   uint32 // instance the traversal runs under, InvalidID at top level
	UserData any    // opaque per-traversal extension data

	aborted atomic.Bool
}

// NewIntersectContext creates a context for the given scene. The scene may
// also implement FilterSource; if so it is used for filter lookups.
func NewIntersectContext(scene VertexSource) *IntersectContext {
	ctx := &IntersectContext{Scene: scene, InstID: InvalidID}
	if fs, ok := scene.(FilterSource); ok {
		ctx.Filters = fs
	}
	return ctx
}

// Abort requests termination of the whole traversal. Intersectors observe
// the flag between primitives and skip further work.
func (c *IntersectContext) Abort() {
	c.aborted.Store(true)
}

// Aborted reports whether a filter has aborted the traversal.
func (c *IntersectContext) Aborted() bool {
	return c.aborted.Load()
}

// LookupFilter returns the filter to apply for geomID, or nil when filters
// are absent or suppressed.
func (c *IntersectContext) LookupFilter(geomID uint32) FilterFunc {
	if c.Filters == nil || c.Flags&FlagSkipFilters != 0 {
		return nil
	}
	return c.Filters.Filter(geomID)
}
