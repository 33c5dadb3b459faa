package geometry

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
)

// randomVec3 samples a vector with components in [-s, s].
func randomVec3(rng *rand.Rand, s float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(rng.Float32()*2 - 1) * s,
		(rng.Float32()*2 - 1) * s,
		(rng.Float32()*2 - 1) * s,
	}
}

// TestMoellerPlueckerAgree shoots rays at random parallelogram quads whose
// expected parameterisation is known by construction, and checks the two
// formulations return the same hit. Targets stay off the quad's outer
// edges; the shared diagonal is covered since watertightness makes both
// variants agree there too.
func TestMoellerPlueckerAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	scene := &flatScene{vertices: [][]mgl32.Vec3{nil}, filters: map[uint32]core.FilterFunc{}}

	moeller := NewMoellerIntersector1(true)
	pluecker := NewPlueckerIntersector1(true)

	for trial := 0; trial < 200; trial++ {
		corner := randomVec3(rng, 1)
		e1 := randomVec3(rng, 1)
		e2 := randomVec3(rng, 1)
		ng := e1.Cross(e2)
		if ng.Len() < 1e-2 {
			continue // degenerate parallelogram
		}

		scene.vertices[0] = []mgl32.Vec3{
			corner,
			corner.Add(e1),
			corner.Add(e1).Add(e2),
			corner.Add(e2),
		}
		quad := NewQuad4([][4]uint32{{0, 1, 2, 3}}, []uint32{0}, []uint32{0})

		// Aim at a known interior point, away from the outer edges.
		u := 0.05 + 0.9*rng.Float32()
		v := 0.05 + 0.9*rng.Float32()
		target := corner.Add(e1.Mul(u)).Add(e2.Mul(v))
		org := target.Add(randomVec3(rng, 2))
		dir := target.Sub(org)
		if math32.Abs(dir.Dot(ng)) < 1e-3*dir.Len()*ng.Len() {
			continue // grazing the plane
		}

		rayM := core.NewRay(org, dir, 0, 4)
		ctxM := core.NewIntersectContext(scene)
		preM := NewPrecalc(&rayM)
		moeller.Intersect(&preM, &rayM, ctxM, &quad)

		rayP := core.NewRay(org, dir, 0, 4)
		ctxP := core.NewIntersectContext(scene)
		preP := NewPrecalc(&rayP)
		pluecker.Intersect(&preP, &rayP, ctxP, &quad)

		if !rayM.HasHit() || !rayP.HasHit() {
			t.Fatalf("trial %d: expected both variants to hit, moeller=%v pluecker=%v",
				trial, rayM.HasHit(), rayP.HasHit())
		}
		if math32.Abs(rayM.TFar-rayP.TFar) > 1e-3 {
			t.Errorf("trial %d: t mismatch: moeller=%v pluecker=%v", trial, rayM.TFar, rayP.TFar)
		}
		if math32.Abs(rayM.U-rayP.U) > 1e-3 || math32.Abs(rayM.V-rayP.V) > 1e-3 {
			t.Errorf("trial %d: uv mismatch: moeller=(%v,%v) pluecker=(%v,%v)",
				trial, rayM.U, rayM.V, rayP.U, rayP.V)
		}

		// Both must agree with the construction.
		if math32.Abs(rayM.U-u) > 1e-3 || math32.Abs(rayM.V-v) > 1e-3 {
			t.Errorf("trial %d: expected uv=(%v,%v), got (%v,%v)", trial, u, v, rayM.U, rayM.V)
		}
		if math32.Abs(rayM.TFar-1) > 1e-3 {
			t.Errorf("trial %d: expected t=1, got %v", trial, rayM.TFar)
		}
	}
}

// TestMoellerPlueckerAgreeOnMisses checks targets outside the quad, off
// the epsilon band around the edges, miss under both formulations.
func TestMoellerPlueckerAgreeOnMisses(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	scene := &flatScene{vertices: [][]mgl32.Vec3{nil}, filters: map[uint32]core.FilterFunc{}}

	for trial := 0; trial < 200; trial++ {
		corner := randomVec3(rng, 1)
		e1 := randomVec3(rng, 1)
		e2 := randomVec3(rng, 1)
		ng := e1.Cross(e2)
		if ng.Len() < 1e-2 {
			continue
		}

		scene.vertices[0] = []mgl32.Vec3{
			corner,
			corner.Add(e1),
			corner.Add(e1).Add(e2),
			corner.Add(e2),
		}
		quad := NewQuad4([][4]uint32{{0, 1, 2, 3}}, []uint32{0}, []uint32{0})

		// Target clearly outside the parameter square.
		u := 1.1 + rng.Float32()
		v := rng.Float32() * 0.9
		if trial%2 == 0 {
			u, v = v, -0.1-rng.Float32()
		}
		target := corner.Add(e1.Mul(u)).Add(e2.Mul(v))
		org := target.Add(randomVec3(rng, 2))
		dir := target.Sub(org)
		if math32.Abs(dir.Dot(ng)) < 1e-3*dir.Len()*ng.Len() {
			continue
		}

		for _, variant := range intersectorVariants() {
			ray := core.NewRay(org, dir, 0, 4)
			ctx := core.NewIntersectContext(scene)
			pre := NewPrecalc(&ray)
			variant.it.Intersect(&pre, &ray, ctx, &quad)
			if ray.HasHit() {
				t.Errorf("trial %d: %s hit at uv=(%v,%v) outside the quad", trial, variant.name, u, v)
			}
		}
	}
}
