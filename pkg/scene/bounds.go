package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// EmptyBounds returns the identity box for Union: inverted infinite
// extents that any point or box collapses.
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box contains no points.
func (b Bounds) Empty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// Extend grows the box to contain point p.
func (b Bounds) Extend(p mgl32.Vec3) Bounds {
	return Bounds{
		Min: mgl32.Vec3{min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()), min(b.Min.Z(), p.Z())},
		Max: mgl32.Vec3{max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()), max(b.Max.Z(), p.Z())},
	}
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Min: mgl32.Vec3{min(b.Min.X(), other.Min.X()), min(b.Min.Y(), other.Min.Y()), min(b.Min.Z(), other.Min.Z())},
		Max: mgl32.Vec3{max(b.Max.X(), other.Max.X()), max(b.Max.Y(), other.Max.Y()), max(b.Max.Z(), other.Max.Z())},
	}
}
