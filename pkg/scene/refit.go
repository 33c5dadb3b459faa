package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/parallel"
)

// refitGrain is the refit passes' minStep: the task count is at most
// ceil(elements/refitGrain).
const refitGrain = 4096

// RefitNormals recomputes the per-quad geometric normal cache. Each task
// stages its primitive range's edge vectors into SoA columns and runs the
// batch cross-product kernel over them. Normals follow the kernels'
// convention for the first triangle half: (V1-V0) × (V3-V0), unnormalized.
func (s *Scene) RefitNormals(pool *parallel.Pool) error {
	if pool == nil {
		pool = parallel.Default()
	}

	for _, m := range s.meshes {
		if m.Size() > 0 && len(m.normals) != m.Size() {
			m.normals = make([]mgl32.Vec3, m.Size())
		}
	}

	err := parallel.ForFor(pool, s.meshes, refitGrain, func(m *QuadMesh, r parallel.Range, base int) {
		n := r.Len()
		e1x, e1y, e1z := make([]float32, n), make([]float32, n), make([]float32, n)
		e2x, e2y, e2z := make([]float32, n), make([]float32, n), make([]float32, n)
		nx, ny, nz := make([]float32, n), make([]float32, n), make([]float32, n)

		for i := 0; i < n; i++ {
			a, b, _, d := m.Corners(r.Begin + i)
			e1 := b.Sub(a)
			e2 := d.Sub(a)
			e1x[i], e1y[i], e1z[i] = e1.X(), e1.Y(), e1.Z()
			e2x[i], e2y[i], e2z[i] = e2.X(), e2.Y(), e2.Z()
		}

		batchCrossProduct(e1x, e1y, e1z, e2x, e2y, e2z, nx, ny, nz)

		for i := 0; i < n; i++ {
			m.normals[r.Begin+i] = mgl32.Vec3{nx[i], ny[i], nz[i]}
		}
	})
	if err != nil {
		return fmt.Errorf("scene: normal refit failed: %w", err)
	}
	return nil
}

// meshVertices adapts a mesh to the ragged driver's Sized contract with
// vertex-count granularity.
type meshVertices struct {
	m *QuadMesh
}

// Size returns the vertex count; absent meshes report zero.
func (v meshVertices) Size() int {
	return v.m.VertexCount()
}

// Transform applies an affine transform to every vertex of every mesh,
// staging each task's vertex range through SoA columns for the batch
// transform kernel. The scene must be committed again afterwards; bounds
// and leaf records are invalidated.
func (s *Scene) Transform(pool *parallel.Pool, mat mgl32.Mat4) error {
	if pool == nil {
		pool = parallel.Default()
	}

	views := make([]meshVertices, len(s.meshes))
	for i, m := range s.meshes {
		views[i] = meshVertices{m: m}
	}

	err := parallel.ForFor(pool, views, refitGrain, func(v meshVertices, r parallel.Range, base int) {
		n := r.Len()
		x, y, z := make([]float32, n), make([]float32, n), make([]float32, n)
		for i := 0; i < n; i++ {
			p := v.m.vertices[r.Begin+i]
			x[i], y[i], z[i] = p.X(), p.Y(), p.Z()
		}

		batchTransformPoints(mat, x, y, z)

		for i := 0; i < n; i++ {
			v.m.vertices[r.Begin+i] = mgl32.Vec3{x[i], y[i], z[i]}
		}
	})
	if err != nil {
		return fmt.Errorf("scene: transform failed: %w", err)
	}

	s.committed = false
	return nil
}
