package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
)

func TestIntersector1_FilterRejectContinuesSelection(t *testing.T) {
	// Two quads in one record at z=0 and z=1. A filter rejecting the
	// nearer primitive must let lane selection fall through to the
	// farther one.
	scene := &flatScene{
		vertices: [][]mgl32.Vec3{{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		}},
		filters: map[uint32]core.FilterFunc{},
	}
	quad := NewQuad4(
		[][4]uint32{{0, 1, 2, 3}, {4, 5, 6, 7}},
		[]uint32{0, 0},
		[]uint32{0, 1},
	)

	calls := 0
	scene.filters[0] = func(hit *core.Hit, ctx *core.IntersectContext) bool {
		calls++
		return hit.PrimID != 0
	}

	for _, variant := range intersectorVariants() {
		t.Run(variant.name, func(t *testing.T) {
			calls = 0
			ray := core.NewRay(mgl32.Vec3{0.25, 0.25, -1}, mgl32.Vec3{0, 0, 1}, 0, 10)
			ctx := core.NewIntersectContext(scene)
			pre := NewPrecalc(&ray)

			variant.it.Intersect(&pre, &ray, ctx, &quad)

			if !ray.HasHit() || ray.PrimID != 1 {
				t.Fatalf("expected the farther primitive to commit, got hit=%v prim=%d", ray.HasHit(), ray.PrimID)
			}
			if math32.Abs(ray.TFar-2) > 1e-5 {
				t.Errorf("expected t=2, got %v", ray.TFar)
			}
			if calls != 2 {
				t.Errorf("expected 2 filter invocations, got %d", calls)
			}
		})
	}
}

func TestIntersector1_FilterRejectAll(t *testing.T) {
	scene, quad := unitQuadScene()
	scene.filters[0] = func(hit *core.Hit, ctx *core.IntersectContext) bool {
		return false
	}

	for _, variant := range intersectorVariants() {
		t.Run(variant.name, func(t *testing.T) {
			ray := core.NewRay(mgl32.Vec3{0.5, 0.5, -1}, mgl32.Vec3{0, 0, 1}, 0, 10)
			ctx := core.NewIntersectContext(scene)
			pre := NewPrecalc(&ray)

			variant.it.Intersect(&pre, &ray, ctx, &quad)
			if ray.HasHit() || ray.TFar != 10 {
				t.Errorf("rejected hit must leave the ray untouched, got hit=%v tfar=%v", ray.HasHit(), ray.TFar)
			}

			if variant.it.Occluded(&pre, &ray, ctx, &quad) {
				t.Error("occlusion must respect filter rejection")
			}
		})
	}
}

func TestIntersector1_FilterDisabled(t *testing.T) {
	// An intersector built with filter=false must commit without
	// consulting the registry; FlagSkipFilters does the same per call.
	scene, quad := unitQuadScene()
	scene.filters[0] = func(hit *core.Hit, ctx *core.IntersectContext) bool {
		t.Error("filter must not be consulted")
		return false
	}

	ray := core.NewRay(mgl32.Vec3{0.5, 0.5, -1}, mgl32.Vec3{0, 0, 1}, 0, 10)
	ctx := core.NewIntersectContext(scene)
	pre := NewPrecalc(&ray)
	NewMoellerIntersector1(false).Intersect(&pre, &ray, ctx, &quad)
	if !ray.HasHit() {
		t.Error("expected a committed hit with filtering compiled out")
	}

	ray = core.NewRay(mgl32.Vec3{0.5, 0.5, -1}, mgl32.Vec3{0, 0, 1}, 0, 10)
	ctx = core.NewIntersectContext(scene)
	ctx.Flags |= core.FlagSkipFilters
	pre = NewPrecalc(&ray)
	NewPlueckerIntersector1(true).Intersect(&pre, &ray, ctx, &quad)
	if !ray.HasHit() {
		t.Error("expected a committed hit with filters suppressed")
	}
}

func TestIntersector1_FilterAbort(t *testing.T) {
	scene, quad := unitQuadScene()
	scene.filters[0] = func(hit *core.Hit, ctx *core.IntersectContext) bool {
		ctx.Abort()
		return false
	}

	for _, variant := range intersectorVariants() {
		t.Run(variant.name, func(t *testing.T) {
			ray := core.NewRay(mgl32.Vec3{0.5, 0.5, -1}, mgl32.Vec3{0, 0, 1}, 0, 10)
			ctx := core.NewIntersectContext(scene)
			pre := NewPrecalc(&ray)

			variant.it.Intersect(&pre, &ray, ctx, &quad)
			if ray.HasHit() {
				t.Error("aborted traversal must not commit")
			}
			if !ctx.Aborted() {
				t.Error("expected the context abort flag to be set")
			}
		})
	}
}

func TestIntersector1_BatchObservesAbort(t *testing.T) {
	// Once a filter aborts, sibling rays in the batch skip their
	// remaining primitives.
	scene, quad := unitQuadScene()
	quads := []Quad4{quad, quad}

	calls := 0
	scene.filters[0] = func(hit *core.Hit, ctx *core.IntersectContext) bool {
		calls++
		ctx.Abort()
		return false
	}

	rays := []*core.Ray{
		{Org: mgl32.Vec3{0.5, 0.5, -1}, Dir: mgl32.Vec3{0, 0, 1}, TFar: 10, GeomID: core.InvalidID},
		{Org: mgl32.Vec3{0.5, 0.5, -1}, Dir: mgl32.Vec3{0, 0, 1}, TFar: 10, GeomID: core.InvalidID},
	}
	pres := []Precalc{NewPrecalc(rays[0]), NewPrecalc(rays[1])}
	ctx := core.NewIntersectContext(scene)

	committed := NewMoellerIntersector1(true).IntersectBatch(pres, 0b11, rays, ctx, quads)
	if committed != 0 {
		t.Errorf("expected no commits after abort, got %#b", committed)
	}
	if calls != 1 {
		t.Errorf("expected traversal to stop after the aborting filter, got %d filter calls", calls)
	}
}
