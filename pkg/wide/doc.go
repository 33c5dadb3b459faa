// Package wide provides SIMD-friendly fixed-width lane types for the
// intersection kernels.
//
// The quad kernels operate on a fixed number of lanes: four primitive lanes
// per quad record, eight lanes when both triangle halves of the four quads
// are evaluated in one step, and four ray lanes per packet. Lane counts are
// part of the kernel contract, so the types here are fixed-size arrays with
// simple loops, which the Go compiler can auto-vectorize on supported
// architectures. Runtime-width vector libraries are deliberately not used
// at this layer: a host-dependent lane count would silently drop kernel
// lanes on narrow targets.
package wide
