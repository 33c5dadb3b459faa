package wide

import "github.com/go-gl/mathgl/mgl32"

// Vec3x4 holds 4 three-dimensional vectors in structure-of-arrays layout.
type Vec3x4 struct {
	X, Y, Z F32x4
}

// SplatVec3 broadcasts a single vector across all 4 lanes.
func SplatVec3(v mgl32.Vec3) Vec3x4 {
	return Vec3x4{
		X: SplatF32(v.X()),
		Y: SplatF32(v.Y()),
		Z: SplatF32(v.Z()),
	}
}

// Lane extracts lane i as a scalar vector.
func (v Vec3x4) Lane(i int) mgl32.Vec3 {
	return mgl32.Vec3{v.X[i], v.Y[i], v.Z[i]}
}

// SetLane stores a scalar vector into lane i.
func (v *Vec3x4) SetLane(i int, p mgl32.Vec3) {
	v.X[i], v.Y[i], v.Z[i] = p.X(), p.Y(), p.Z()
}

// Add performs lane-wise vector addition.
func (v Vec3x4) Add(other Vec3x4) Vec3x4 {
	return Vec3x4{v.X.Add(other.X), v.Y.Add(other.Y), v.Z.Add(other.Z)}
}

// Sub performs lane-wise vector subtraction.
func (v Vec3x4) Sub(other Vec3x4) Vec3x4 {
	return Vec3x4{v.X.Sub(other.X), v.Y.Sub(other.Y), v.Z.Sub(other.Z)}
}

// Scale multiplies each lane's vector by the matching scalar lane.
func (v Vec3x4) Scale(s F32x4) Vec3x4 {
	return Vec3x4{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Dot computes the per-lane dot product.
func (v Vec3x4) Dot(other Vec3x4) F32x4 {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y)).Add(v.Z.Mul(other.Z))
}

// Cross computes the per-lane cross product.
func (v Vec3x4) Cross(other Vec3x4) Vec3x4 {
	return Vec3x4{
		X: v.Y.Mul(other.Z).Sub(v.Z.Mul(other.Y)),
		Y: v.Z.Mul(other.X).Sub(v.X.Mul(other.Z)),
		Z: v.X.Mul(other.Y).Sub(v.Y.Mul(other.X)),
	}
}
