package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-trace-kernels/pkg/core"
	"github.com/df07/go-trace-kernels/pkg/stats"
	"github.com/df07/go-trace-kernels/pkg/wide"
)

// Precalc caches direction-dependent quantities for one ray so the inner
// kernel is amortised when the same ray visits many leaves. It lives for
// the duration of the ray's traversal and is owned by the traversing
// thread, which also owns the embedded statistics counters.
type Precalc struct {
	Org, Dir wide.Vec3x8 // ray origin and direction broadcast across lanes
	RcpDir   mgl32.Vec3  // reciprocal direction, consumed by box traversal
	Stats    stats.Counters
}

// NewPrecalc builds the per-ray cache.
func NewPrecalc(ray *core.Ray) Precalc {
	return Precalc{
		Org:    wide.SplatVec3x8(ray.Org),
		Dir:    wide.SplatVec3x8(ray.Dir),
		RcpDir: mgl32.Vec3{1 / ray.Dir.X(), 1 / ray.Dir.Y(), 1 / ray.Dir.Z()},
	}
}

// PacketPrecalc caches per-packet quantities for the K-lane intersectors.
type PacketPrecalc struct {
	RcpDirX, RcpDirY, RcpDirZ wide.F32x4
	Stats                     stats.Counters
}

// NewPacketPrecalc builds the per-packet cache.
func NewPacketPrecalc(p *core.RayPacket) PacketPrecalc {
	one := wide.SplatF32(1)
	return PacketPrecalc{
		RcpDirX: one.Div(p.DirX),
		RcpDirY: one.Div(p.DirY),
		RcpDirZ: one.Div(p.DirZ),
	}
}
