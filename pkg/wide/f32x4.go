package wide

import "github.com/chewxy/math32"

// F32x4 represents 4 float32 values for SIMD-style operations.
type F32x4 [4]float32

// SplatF32 creates an F32x4 with all lanes set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs lane-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div performs lane-wise division. Division by zero follows IEEE 754.
func (v F32x4) Div(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] / other[i]
	}
	return result
}

// MulAdd returns v*other + acc per lane.
func (v F32x4) MulAdd(other, acc F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i]*other[i] + acc[i]
	}
	return result
}

// Neg negates each lane.
func (v F32x4) Neg() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = -v[i]
	}
	return result
}

// Abs returns the absolute value of each lane.
func (v F32x4) Abs() F32x4 {
	var result F32x4
	for i := range v {
		result[i] = math32.Abs(v[i])
	}
	return result
}

// Min performs lane-wise minimum.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = min(v[i], other[i])
	}
	return result
}

// Max performs lane-wise maximum.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = max(v[i], other[i])
	}
	return result
}

// Lt compares v < other per lane.
func (v F32x4) Lt(other F32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// Le compares v <= other per lane.
func (v F32x4) Le(other F32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] <= other[i]
	}
	return result
}

// Gt compares v > other per lane.
func (v F32x4) Gt(other F32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] > other[i]
	}
	return result
}

// Ge compares v >= other per lane.
func (v F32x4) Ge(other F32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] >= other[i]
	}
	return result
}

// Ne compares v != other per lane.
func (v F32x4) Ne(other F32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] != other[i]
	}
	return result
}
