package wide

// B32x4 is a 4-lane boolean mask.
type B32x4 [4]bool

// SplatB32 creates a B32x4 with all lanes set to b.
func SplatB32(b bool) B32x4 {
	return B32x4{b, b, b, b}
}

// And combines two masks lane-wise.
func (m B32x4) And(other B32x4) B32x4 {
	var result B32x4
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// Or combines two masks lane-wise.
func (m B32x4) Or(other B32x4) B32x4 {
	var result B32x4
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result
}

// AndNot returns m && !other per lane.
func (m B32x4) AndNot(other B32x4) B32x4 {
	var result B32x4
	for i := range m {
		result[i] = m[i] && !other[i]
	}
	return result
}

// Not inverts each lane.
func (m B32x4) Not() B32x4 {
	var result B32x4
	for i := range m {
		result[i] = !m[i]
	}
	return result
}

// Any reports whether any lane is set.
func (m B32x4) Any() bool {
	return m[0] || m[1] || m[2] || m[3]
}

// All reports whether every lane is set.
func (m B32x4) All() bool {
	return m[0] && m[1] && m[2] && m[3]
}

// Count returns the number of set lanes.
func (m B32x4) Count() int {
	n := 0
	for i := range m {
		if m[i] {
			n++
		}
	}
	return n
}

// Select returns a[i] where the mask lane is set, b[i] otherwise.
func (m B32x4) Select(a, b F32x4) F32x4 {
	var result F32x4
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// SelectU32 returns a[i] where the mask lane is set, b[i] otherwise.
func (m B32x4) SelectU32(a, b U32x4) U32x4 {
	var result U32x4
	for i := range m {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// U32x4 represents 4 uint32 lanes, used for identifier columns.
type U32x4 [4]uint32

// SplatU32 creates a U32x4 with all lanes set to n.
func SplatU32(n uint32) U32x4 {
	return U32x4{n, n, n, n}
}

// Eq compares v == other per lane.
func (v U32x4) Eq(other U32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] == other[i]
	}
	return result
}

// Ne compares v != other per lane.
func (v U32x4) Ne(other U32x4) B32x4 {
	var result B32x4
	for i := range v {
		result[i] = v[i] != other[i]
	}
	return result
}
