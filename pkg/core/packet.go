package core

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/wide"
)

// PacketWidth is the number of ray lanes in a RayPacket.
const PacketWidth = 4

// RayPacket holds PacketWidth rays in structure-of-arrays layout so the
// packet intersectors can evaluate all lanes with wide arithmetic. Lane
// validity is carried externally by the caller's mask; the packet itself
// stores ray state for every lane.
type RayPacket struct {
	OrgX, OrgY, OrgZ wide.F32x4
	DirX, DirY, DirZ wide.F32x4
	TNear            wide.F32x4
	TFar             wide.F32x4

	// Hit state, written on commit.
	U, V          wide.F32x4
	NgX, NgY, NgZ wide.F32x4
	GeomID        wide.U32x4
	PrimID        wide.U32x4
	InstID        wide.U32x4
}

// NewRayPacket creates a packet with every lane's identifiers cleared.
func NewRayPacket() *RayPacket {
	p := &RayPacket{}
	p.GeomID = wide.SplatU32(InvalidID)
	p.PrimID = wide.SplatU32(InvalidID)
	p.InstID = wide.SplatU32(InvalidID)
	return p
}

// SetRay stores a ray into lane k.
func (p *RayPacket) SetRay(k int, r Ray) {
	p.OrgX[k], p.OrgY[k], p.OrgZ[k] = r.Org.X(), r.Org.Y(), r.Org.Z()
	p.DirX[k], p.DirY[k], p.DirZ[k] = r.Dir.X(), r.Dir.Y(), r.Dir.Z()
	p.TNear[k] = r.TNear
	p.TFar[k] = r.TFar
	p.U[k], p.V[k] = r.U, r.V
	p.NgX[k], p.NgY[k], p.NgZ[k] = r.Ng.X(), r.Ng.Y(), r.Ng.Z()
	p.GeomID[k] = r.GeomID
	p.PrimID[k] = r.PrimID
	p.InstID[k] = r.InstID
}

// Ray extracts lane k as a single ray.
func (p *RayPacket) Ray(k int) Ray {
	return Ray{
		Org:    mgl32.Vec3{p.OrgX[k], p.OrgY[k], p.OrgZ[k]},
		Dir:    mgl32.Vec3{p.DirX[k], p.DirY[k], p.DirZ[k]},
		TNear:  p.TNear[k],
		TFar:   p.TFar[k],
		U:      p.U[k],
		V:      p.V[k],
		Ng:     mgl32.Vec3{p.NgX[k], p.NgY[k], p.NgZ[k]},
		GeomID: p.GeomID[k],
		PrimID: p.PrimID[k],
		InstID: p.InstID[k],
	}
}

// CommitRay writes the mutable fields of r back into lane k.
func (p *RayPacket) CommitRay(k int, r Ray) {
	p.TFar[k] = r.TFar
	p.U[k], p.V[k] = r.U, r.V
	p.NgX[k], p.NgY[k], p.NgZ[k] = r.Ng.X(), r.Ng.Y(), r.Ng.Z()
	p.GeomID[k] = r.GeomID
	p.PrimID[k] = r.PrimID
	p.InstID[k] = r.InstID
}
