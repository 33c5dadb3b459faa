package scene

import (
	"fmt"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/geometry"
	"github.com/df07/go-trace-kernels/pkg/parallel"
)

// commitGrain is the build pass's minStep: the task count is at most
// ceil(primitives/commitGrain).
const commitGrain = 1024

// Commit builds the packed leaf records and world bounds. The pass walks
// the ragged "geometry list × primitive list" space with the
// nested-parallel driver: packing fills lane columns of the Quad4 records
// (tasks touch disjoint lanes, so a record split across a task boundary is
// written without coordination), then a reduction pass unions per-range
// bounds. logger may be nil.
func (s *Scene) Commit(pool *parallel.Pool, logger core.Logger) error {
	if pool == nil {
		pool = parallel.Default()
	}

	s.records = make([][]geometry.Quad4, len(s.meshes))
	for i, m := range s.meshes {
		if n := m.Size(); n > 0 {
			s.records[i] = make([]geometry.Quad4, (n+geometry.QuadWidth-1)/geometry.QuadWidth)
		}
	}

	err := parallel.ForFor(pool, s.meshes, commitGrain, func(m *QuadMesh, r parallel.Range, base int) {
		s.packRange(m, r)
	})
	if err != nil {
		return fmt.Errorf("scene: commit pack failed: %w", err)
	}

	// Pad the trailing record of each mesh so gathers stay in bounds.
	for i, m := range s.meshes {
		s.padTail(m, s.records[i])
	}

	bounds, err := parallel.ForForReduce(pool, s.meshes, commitGrain, EmptyBounds(),
		func(m *QuadMesh, r parallel.Range, base int) Bounds {
			b := EmptyBounds()
			for i := r.Begin; i < r.End; i++ {
				a, p1, p2, p3 := m.Corners(i)
				b = b.Extend(a).Extend(p1).Extend(p2).Extend(p3)
			}
			return b
		},
		Bounds.Union)
	if err != nil {
		return fmt.Errorf("scene: commit bounds failed: %w", err)
	}

	s.bounds = bounds
	s.committed = true
	if logger != nil {
		logger.Printf("scene: committed %d geometries, %d primitives", len(s.meshes), s.primitiveCount())
	}
	return nil
}

// packRange fills the record lanes covering primitives [r.Begin, r.End) of
// one mesh.
func (s *Scene) packRange(m *QuadMesh, r parallel.Range) {
	records := s.records[m.geomID]
	for i := r.Begin; i < r.End; i++ {
		rec := &records[i/geometry.QuadWidth]
		lane := i % geometry.QuadWidth
		q := m.quads[i]
		rec.V0[lane] = q[0]
		rec.V1[lane] = q[1]
		rec.V2[lane] = q[2]
		rec.V3[lane] = q[3]
		rec.GeomIDs[lane] = m.geomID
		rec.PrimIDs[lane] = uint32(i)
	}
}

// padTail marks the unused lanes of a mesh's final record invalid,
// replicating lane 0's vertex indices so gathers stay in bounds.
func (s *Scene) padTail(m *QuadMesh, records []geometry.Quad4) {
	n := m.Size()
	if n == 0 || n%geometry.QuadWidth == 0 {
		return
	}
	rec := &records[len(records)-1]
	for lane := n % geometry.QuadWidth; lane < geometry.QuadWidth; lane++ {
		rec.V0[lane] = rec.V0[0]
		rec.V1[lane] = rec.V1[0]
		rec.V2[lane] = rec.V2[0]
		rec.V3[lane] = rec.V3[0]
		rec.GeomIDs[lane] = core.InvalidID
		rec.PrimIDs[lane] = core.InvalidID
	}
}

// Records returns the packed leaf records of one geometry. Valid after
// Commit.
func (s *Scene) Records(geomID uint32) []geometry.Quad4 {
	return s.records[geomID]
}

// AllRecords returns every packed leaf record in geometry order.
func (s *Scene) AllRecords() []geometry.Quad4 {
	var all []geometry.Quad4
	for _, recs := range s.records {
		all = append(all, recs...)
	}
	return all
}

func (s *Scene) primitiveCount() int {
	n := 0
	for _, m := range s.meshes {
		n += m.Size()
	}
	return n
}
