package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// QuadWidth is the number of primitive lanes in a Quad4 record.
const QuadWidth = 4

// Quad4 is an indexed-quad leaf record: four parallel lanes of vertex
// indices into the scene vertex buffers plus geometry and primitive
// identifier columns. Records are borrowed from the acceleration
// structure's leaf storage and never mutated by the intersectors.
//
// Lane i is valid iff GeomIDs[i] != core.InvalidID. Invalid tail lanes
// replicate lane 0's vertex indices so gathers stay in bounds; the
// replicated lane can never commit a hit because the intersectors mask
// invalid lanes before the epilogues select one.
type Quad4 struct {
	V0, V1, V2, V3   wide.U32x4
	GeomIDs, PrimIDs wide.U32x4
}

// NewQuad4 packs up to QuadWidth quads into one record. vertIdx holds each
// quad's four vertex indices in ccw order; geomIDs and primIDs must have
// the same length. Panics on an empty or oversized batch.
func NewQuad4(vertIdx [][4]uint32, geomIDs, primIDs []uint32) Quad4 {
	n := len(vertIdx)
	if n == 0 || n > QuadWidth {
		panic("geometry: quad batch must hold 1 to 4 quads")
	}
	if len(geomIDs) != n || len(primIDs) != n {
		panic("geometry: identifier columns must match quad count")
	}

	var q Quad4
	for i := 0; i < QuadWidth; i++ {
		src := i
		if i >= n {
			src = 0 // pad with lane 0 indices, marked invalid below
		}
		q.V0[i] = vertIdx[src][0]
		q.V1[i] = vertIdx[src][1]
		q.V2[i] = vertIdx[src][2]
		q.V3[i] = vertIdx[src][3]
		if i < n {
			q.GeomIDs[i] = geomIDs[i]
			q.PrimIDs[i] = primIDs[i]
		} else {
			q.GeomIDs[i] = core.InvalidID
			q.PrimIDs[i] = core.InvalidID
		}
	}
	return q
}

// Valid reports whether lane i holds a real primitive.
func (q *Quad4) Valid(i int) bool {
	return q.GeomIDs[i] != core.InvalidID
}

// Size returns the number of leading valid lanes.
func (q *Quad4) Size() int {
	n := 0
	for n < QuadWidth && q.Valid(n) {
		n++
	}
	return n
}

// MaxSize returns the lane capacity of the record.
func (q *Quad4) MaxSize() int {
	return QuadWidth
}

// Gather resolves the record into four lane-packed vertex vectors by
// gathered loads from the scene's vertex storage.
func (q *Quad4) Gather(src core.VertexSource) (v0, v1, v2, v3 wide.Vec3x4) {
	for i := 0; i < QuadWidth; i++ {
		g := q.GeomIDs[i]
		if g == core.InvalidID {
			g = q.GeomIDs[0]
		}
		v0.SetLane(i, src.Vertex(g, q.V0[i]))
		v1.SetLane(i, src.Vertex(g, q.V1[i]))
		v2.SetLane(i, src.Vertex(g, q.V2[i]))
		v3.SetLane(i, src.Vertex(g, q.V3[i]))
	}
	return v0, v1, v2, v3
}

// GatherLane resolves a single lane's four corners, for the packet path.
func (q *Quad4) GatherLane(i int, src core.VertexSource) (a, b, c, d mgl32.Vec3) {
	g := q.GeomIDs[i]
	a = src.Vertex(g, q.V0[i])
	b = src.Vertex(g, q.V1[i])
	c = src.Vertex(g, q.V2[i])
	d = src.Vertex(g, q.V3[i])
	return a, b, c, d
}
