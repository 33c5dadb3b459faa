package wide

import "github.com/go-gl/mathgl/mgl32"

// Vec3x8 holds 8 three-dimensional vectors in structure-of-arrays layout.
type Vec3x8 struct {
	X, Y, Z F32x8
}

// SplatVec3x8 broadcasts a single vector across all 8 lanes.
func SplatVec3x8(v mgl32.Vec3) Vec3x8 {
	return Vec3x8{
		X: SplatF32x8(v.X()),
		Y: SplatF32x8(v.Y()),
		Z: SplatF32x8(v.Z()),
	}
}

// JoinVec3x4 concatenates two Vec3x4 halves into a Vec3x8.
func JoinVec3x4(lo, hi Vec3x4) Vec3x8 {
	return Vec3x8{
		X: JoinF32x4(lo.X, hi.X),
		Y: JoinF32x4(lo.Y, hi.Y),
		Z: JoinF32x4(lo.Z, hi.Z),
	}
}

// Lane extracts lane i as a scalar vector.
func (v Vec3x8) Lane(i int) mgl32.Vec3 {
	return mgl32.Vec3{v.X[i], v.Y[i], v.Z[i]}
}

// Add performs lane-wise vector addition.
func (v Vec3x8) Add(other Vec3x8) Vec3x8 {
	return Vec3x8{v.X.Add(other.X), v.Y.Add(other.Y), v.Z.Add(other.Z)}
}

// Sub performs lane-wise vector subtraction.
func (v Vec3x8) Sub(other Vec3x8) Vec3x8 {
	return Vec3x8{v.X.Sub(other.X), v.Y.Sub(other.Y), v.Z.Sub(other.Z)}
}

// Dot computes the per-lane dot product.
func (v Vec3x8) Dot(other Vec3x8) F32x8 {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y)).Add(v.Z.Mul(other.Z))
}

// Cross computes the per-lane cross product.
func (v Vec3x8) Cross(other Vec3x8) Vec3x8 {
	return Vec3x8{
		X: v.Y.Mul(other.Z).Sub(v.Z.Mul(other.Y)),
		Y: v.Z.Mul(other.X).Sub(v.X.Mul(other.Z)),
		Z: v.X.Mul(other.Y).Sub(v.Y.Mul(other.X)),
	}
}
