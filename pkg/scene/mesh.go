package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
)

// QuadMesh is a quadrilateral mesh: a shared vertex buffer plus four
// vertex indices per primitive. Corners are listed ccw; the intersectors
// split each quad along the V1V3 diagonal.
type QuadMesh struct {
	vertices []mgl32.Vec3
	quads    [][4]uint32
	normals  []mgl32.Vec3 // per-quad geometric normals, filled by RefitNormals
	filter   core.FilterFunc
	geomID   uint32
}

// NewQuadMesh creates a mesh from a vertex buffer and per-quad vertex
// indices. Panics on an out-of-bounds index.
func NewQuadMesh(vertices []mgl32.Vec3, quads [][4]uint32) *QuadMesh {
	for _, q := range quads {
		for _, idx := range q {
			if int(idx) >= len(vertices) {
				panic("scene: quad vertex index out of bounds")
			}
		}
	}
	return &QuadMesh{
		vertices: vertices,
		quads:    quads,
		geomID:   core.InvalidID,
	}
}

// Size returns the primitive count. A nil mesh reports zero, so ragged
// geometry lists with absent entries iterate cleanly.
func (m *QuadMesh) Size() int {
	if m == nil {
		return 0
	}
	return len(m.quads)
}

// VertexCount returns the number of vertices in the buffer.
func (m *QuadMesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.vertices)
}

// Vertex returns vertex i.
func (m *QuadMesh) Vertex(i uint32) mgl32.Vec3 {
	return m.vertices[i]
}

// Quad returns the vertex indices of primitive i.
func (m *QuadMesh) Quad(i int) [4]uint32 {
	return m.quads[i]
}

// GeomID returns the identifier assigned when the mesh was added to a
// scene, or core.InvalidID before that.
func (m *QuadMesh) GeomID() uint32 {
	return m.geomID
}

// SetFilter registers an intersection filter for this mesh's hits.
func (m *QuadMesh) SetFilter(f core.FilterFunc) {
	m.filter = f
}

// Normal returns the cached geometric normal of primitive i. Valid after
// Scene.RefitNormals.
func (m *QuadMesh) Normal(i int) mgl32.Vec3 {
	return m.normals[i]
}

// Corners resolves primitive i into its four corner positions.
func (m *QuadMesh) Corners(i int) (a, b, c, d mgl32.Vec3) {
	q := m.quads[i]
	return m.vertices[q[0]], m.vertices[q[1]], m.vertices[q[2]], m.vertices[q[3]]
}
