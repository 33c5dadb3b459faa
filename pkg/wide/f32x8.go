package wide

import "github.com/chewxy/math32"

// F32x8 represents 8 float32 values. The quad kernels use it to evaluate
// both triangle halves of 4 quads in a single step: lanes 0-3 carry the
// first halves, lanes 4-7 the second halves.
type F32x8 [8]float32

// SplatF32x8 creates an F32x8 with all lanes set to n.
func SplatF32x8(n float32) F32x8 {
	return F32x8{n, n, n, n, n, n, n, n}
}

// JoinF32x4 concatenates two F32x4 halves into an F32x8.
func JoinF32x4(lo, hi F32x4) F32x8 {
	return F32x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// Split returns the low and high F32x4 halves.
func (v F32x8) Split() (lo, hi F32x4) {
	copy(lo[:], v[:4])
	copy(hi[:], v[4:])
	return lo, hi
}

// Add performs lane-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs lane-wise division. Division by zero follows IEEE 754.
func (v F32x8) Div(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// MulAdd returns v*other + acc per lane.
func (v F32x8) MulAdd(other, acc F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*other[i] + acc[i]
	}
	return result
}

// Neg negates each lane.
func (v F32x8) Neg() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = -v[i]
	}
	return result
}

// Abs returns the absolute value of each lane.
func (v F32x8) Abs() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = math32.Abs(v[i])
	}
	return result
}

// Min performs lane-wise minimum.
func (v F32x8) Min(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = min(v[i], other[i])
	}
	return result
}

// Max performs lane-wise maximum.
func (v F32x8) Max(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = max(v[i], other[i])
	}
	return result
}

// Lt compares v < other per lane.
func (v F32x8) Lt(other F32x8) B32x8 {
	var result B32x8
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// Le compares v <= other per lane.
func (v F32x8) Le(other F32x8) B32x8 {
	var result B32x8
	for i := range v {
		result[i] = v[i] <= other[i]
	}
	return result
}

// Ge compares v >= other per lane.
func (v F32x8) Ge(other F32x8) B32x8 {
	var result B32x8
	for i := range v {
		result[i] = v[i] >= other[i]
	}
	return result
}

// Ne compares v != other per lane.
func (v F32x8) Ne(other F32x8) B32x8 {
	var result B32x8
	for i := range v {
		result[i] = v[i] != other[i]
	}
	return result
}

// B32x8 is an 8-lane boolean mask.
type B32x8 [8]bool

// SplatB32x8 creates a B32x8 with all lanes set to b.
func SplatB32x8(b bool) B32x8 {
	var result B32x8
	for i := range result {
		result[i] = b
	}
	return result
}

// JoinB32x4 concatenates two B32x4 halves into a B32x8.
func JoinB32x4(lo, hi B32x4) B32x8 {
	return B32x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// And combines two masks lane-wise.
func (m B32x8) And(other B32x8) B32x8 {
	var result B32x8
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// Or combines two masks lane-wise.
func (m B32x8) Or(other B32x8) B32x8 {
	var result B32x8
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result
}

// Any reports whether any lane is set.
func (m B32x8) Any() bool {
	for i := range m {
		if m[i] {
			return true
		}
	}
	return false
}

// Select returns a[i] where the mask lane is set, b[i] otherwise.
func (m B32x8) Select(a, b F32x8) F32x8 {
	var result F32x8
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}
