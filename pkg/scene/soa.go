package scene

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/go-gl/mathgl/mgl32"
)

// Batch kernels over structure-of-arrays columns. The refit passes stage
// mesh data into SoA slices so these run full-width regardless of mesh
// layout; tails are handled with masked loads.

// batchCrossProduct computes c = a × b over SoA columns:
// cx = ay*bz - az*by, cy = az*bx - ax*bz, cz = ax*by - ay*bx.
func batchCrossProduct(ax, ay, az, bx, by, bz, cx, cy, cz []float32) {
	size := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz))

	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			vAx := hwy.Load(ax[offset:])
			vAy := hwy.Load(ay[offset:])
			vAz := hwy.Load(az[offset:])
			vBx := hwy.Load(bx[offset:])
			vBy := hwy.Load(by[offset:])
			vBz := hwy.Load(bz[offset:])

			vCx := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))
			vCy := hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz))
			vCz := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.Store(vCx, cx[offset:])
			hwy.Store(vCy, cy[offset:])
			hwy.Store(vCz, cz[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)

			vAx := hwy.MaskLoad(mask, ax[offset:])
			vAy := hwy.MaskLoad(mask, ay[offset:])
			vAz := hwy.MaskLoad(mask, az[offset:])
			vBx := hwy.MaskLoad(mask, bx[offset:])
			vBy := hwy.MaskLoad(mask, by[offset:])
			vBz := hwy.MaskLoad(mask, bz[offset:])

			vCx := hwy.Sub(hwy.Mul(vAy, vBz), hwy.Mul(vAz, vBy))
			vCy := hwy.Sub(hwy.Mul(vAz, vBx), hwy.Mul(vAx, vBz))
			vCz := hwy.Sub(hwy.Mul(vAx, vBy), hwy.Mul(vAy, vBx))

			hwy.MaskStore(mask, vCx, cx[offset:])
			hwy.MaskStore(mask, vCy, cy[offset:])
			hwy.MaskStore(mask, vCz, cz[offset:])
		},
	)
}

// batchTransformPoints applies an affine transform to SoA point columns in
// place.
func batchTransformPoints(m mgl32.Mat4, x, y, z []float32) {
	vM00, vM01, vM02, vM03 := hwy.Set(m.At(0, 0)), hwy.Set(m.At(0, 1)), hwy.Set(m.At(0, 2)), hwy.Set(m.At(0, 3))
	vM10, vM11, vM12, vM13 := hwy.Set(m.At(1, 0)), hwy.Set(m.At(1, 1)), hwy.Set(m.At(1, 2)), hwy.Set(m.At(1, 3))
	vM20, vM21, vM22, vM23 := hwy.Set(m.At(2, 0)), hwy.Set(m.At(2, 1)), hwy.Set(m.At(2, 2)), hwy.Set(m.At(2, 3))

	size := min(len(x), len(y), len(z))
	hwy.ProcessWithTail[float32](size,
		func(offset int) {
			vx := hwy.Load(x[offset:])
			vy := hwy.Load(y[offset:])
			vz := hwy.Load(z[offset:])

			rx := hwy.FMA(vx, vM00, hwy.FMA(vy, vM01, hwy.FMA(vz, vM02, vM03)))
			ry := hwy.FMA(vx, vM10, hwy.FMA(vy, vM11, hwy.FMA(vz, vM12, vM13)))
			rz := hwy.FMA(vx, vM20, hwy.FMA(vy, vM21, hwy.FMA(vz, vM22, vM23)))

			hwy.Store(rx, x[offset:])
			hwy.Store(ry, y[offset:])
			hwy.Store(rz, z[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[float32](count)

			vx := hwy.MaskLoad(mask, x[offset:])
			vy := hwy.MaskLoad(mask, y[offset:])
			vz := hwy.MaskLoad(mask, z[offset:])

			rx := hwy.FMA(vx, vM00, hwy.FMA(vy, vM01, hwy.FMA(vz, vM02, vM03)))
			ry := hwy.FMA(vx, vM10, hwy.FMA(vy, vM11, hwy.FMA(vz, vM12, vM13)))
			rz := hwy.FMA(vx, vM20, hwy.FMA(vy, vM21, hwy.FMA(vz, vM22, vM23)))

			hwy.MaskStore(mask, rx, x[offset:])
			hwy.MaskStore(mask, ry, y[offset:])
			hwy.MaskStore(mask, rz, z[offset:])
		},
	)
}
