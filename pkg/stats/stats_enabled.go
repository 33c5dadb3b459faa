//go:build tracestats

package stats

// Enabled reports whether statistics collection is compiled in.
const Enabled = true

// AddNormal records an intersection query over rays ray lanes and prims
// primitive records.
func (c *Counters) AddNormal(rays, prims int) {
	c.Normal.TravRays += uint64(rays)
	c.Normal.TravPrims += uint64(prims)
}

// AddShadow records an occlusion query over rays ray lanes and prims
// primitive records.
func (c *Counters) AddShadow(rays, prims int) {
	c.Shadow.TravRays += uint64(rays)
	c.Shadow.TravPrims += uint64(prims)
}
