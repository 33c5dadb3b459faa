//go:build !tracestats

package stats

// Enabled reports whether statistics collection is compiled in.
const Enabled = false

// AddNormal is a no-op without the tracestats build tag.
func (c *Counters) AddNormal(rays, prims int) {}

// AddShadow is a no-op without the tracestats build tag.
func (c *Counters) AddShadow(rays, prims int) {}
