package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/geometry"
)

// Scene is an in-memory quad-mesh scene database: a geometry list (absent
// entries permitted), the packed leaf records built by Commit, and the
// filter registry the epilogues consult. It implements core.VertexSource
// and core.FilterSource; vertex buffers and leaf records are shared
// read-only during a traversal batch.
type Scene struct {
	meshes    []*QuadMesh
	records   [][]geometry.Quad4 // packed leaf records per geometry
	bounds    Bounds
	committed bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{bounds: EmptyBounds()}
}

// Add appends a mesh and returns its assigned geomID. A nil mesh reserves
// the slot, leaving a hole in the geometry list.
func (s *Scene) Add(m *QuadMesh) uint32 {
	geomID := uint32(len(s.meshes))
	if m != nil {
		m.geomID = geomID
	}
	s.meshes = append(s.meshes, m)
	s.committed = false
	return geomID
}

// Meshes returns the geometry list, including absent entries.
func (s *Scene) Meshes() []*QuadMesh {
	return s.meshes
}

// Mesh returns the geometry with the given identifier, or nil.
func (s *Scene) Mesh(geomID uint32) *QuadMesh {
	if int(geomID) >= len(s.meshes) {
		return nil
	}
	return s.meshes[geomID]
}

// Vertex implements core.VertexSource.
func (s *Scene) Vertex(geomID, idx uint32) mgl32.Vec3 {
	return s.meshes[geomID].vertices[idx]
}

// Filter implements core.FilterSource.
func (s *Scene) Filter(geomID uint32) core.FilterFunc {
	m := s.Mesh(geomID)
	if m == nil {
		return nil
	}
	return m.filter
}

// Bounds returns the world bounds computed by the last Commit.
func (s *Scene) Bounds() Bounds {
	return s.bounds
}

// Committed reports whether leaf records and bounds are current.
func (s *Scene) Committed() bool {
	return s.committed
}
