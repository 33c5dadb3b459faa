// Package stats collects traversal statistics from the intersection
// kernels. Counters are owned by the traversing thread (one set per ray
// precalculation), so the hot path needs no synchronization; owners drain
// into the process-wide totals on demand. All increments compile to no-ops
// unless the tracestats build tag is set.
package stats

import "sync/atomic"

// Path counts traversal events for one ray kind.
type Path struct {
	TravPrims uint64 // primitive records visited
	TravRays  uint64 // rays (or packet lanes) tested against primitives
}

// Counters holds the per-path counter sets. Normal covers intersection
// queries, Shadow covers occlusion queries.
type Counters struct {
	Normal Path
	Shadow Path
}

// global totals, drained into by counter owners.
var global struct {
	normalPrims atomic.Uint64
	normalRays  atomic.Uint64
	shadowPrims atomic.Uint64
	shadowRays  atomic.Uint64
}

// Drain adds the local counters into the process-wide totals and resets
// them. Safe to call from any goroutine.
func (c *Counters) Drain() {
	global.normalPrims.Add(c.Normal.TravPrims)
	global.normalRays.Add(c.Normal.TravRays)
	global.shadowPrims.Add(c.Shadow.TravPrims)
	global.shadowRays.Add(c.Shadow.TravRays)
	*c = Counters{}
}

// Snapshot returns the current process-wide totals.
func Snapshot() Counters {
	return Counters{
		Normal: Path{
			TravPrims: global.normalPrims.Load(),
			TravRays:  global.normalRays.Load(),
		},
		Shadow: Path{
			TravPrims: global.shadowPrims.Load(),
			TravRays:  global.shadowRays.Load(),
		},
	}
}

// Reset clears the process-wide totals.
func Reset() {
	global.normalPrims.Store(0)
	global.normalRays.Store(0)
	global.shadowPrims.Store(0)
	global.shadowRays.Store(0)
}
