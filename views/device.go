//go:build cgo

package views

import (
	"unsafe"

	"github.com/notargets/gocca"
)

// Device-resident views mirror a gocca buffer through a host shadow: the
// constructor gathers device memory to the shadow, Set mutates the shadow,
// and Flush scatters it back. The element kernels index the shadow exactly
// as they index host slices, so the math has a single code path.

// DeviceVector is a VectorView over device-resident node-major data.
type DeviceVector struct {
	mem    *gocca.OCCAMemory
	shadow []float64
	dim    int
}

// NewDeviceVector gathers numNodes*dim float64 values from mem.
func NewDeviceVector(mem *gocca.OCCAMemory, numNodes, dim int) *DeviceVector {
	v := &DeviceVector{
		mem:    mem,
		shadow: make([]float64, numNodes*dim),
		dim:    dim,
	}
	mem.CopyTo(unsafe.Pointer(&v.shadow[0]), int64(len(v.shadow)*8))
	return v
}

func (v *DeviceVector) NumNodes() int { return len(v.shadow) / v.dim }

func (v *DeviceVector) At(node, comp int) float64 { return v.shadow[node*v.dim+comp] }

func (v *DeviceVector) Set(node, comp int, val float64) { v.shadow[node*v.dim+comp] = val }

// Flush scatters the shadow back to device memory.
func (v *DeviceVector) Flush() {
	v.mem.CopyFrom(unsafe.Pointer(&v.shadow[0]), int64(len(v.shadow)*8))
}

// DeviceScalar is a ScalarView over device-resident per-node data.
type DeviceScalar struct {
	mem    *gocca.OCCAMemory
	shadow []float64
}

func NewDeviceScalar(mem *gocca.OCCAMemory, numNodes int) *DeviceScalar {
	s := &DeviceScalar{
		mem:    mem,
		shadow: make([]float64, numNodes),
	}
	mem.CopyTo(unsafe.Pointer(&s.shadow[0]), int64(len(s.shadow)*8))
	return s
}

func (s *DeviceScalar) NumNodes() int { return len(s.shadow) }

func (s *DeviceScalar) At(node int) float64 { return s.shadow[node] }

func (s *DeviceScalar) Set(node int, val float64) { s.shadow[node] = val }

func (s *DeviceScalar) Flush() {
	s.mem.CopyFrom(unsafe.Pointer(&s.shadow[0]), int64(len(s.shadow)*8))
}

// DeviceTensor is a TensorView over device-resident integration-point-major
// data with ncomp components per integration point.
type DeviceTensor struct {
	mem    *gocca.OCCAMemory
	shadow []float64
	ncomp  int
}

func NewDeviceTensor(mem *gocca.OCCAMemory, numIntPts, ncomp int) *DeviceTensor {
	t := &DeviceTensor{
		mem:    mem,
		shadow: make([]float64, numIntPts*ncomp),
		ncomp:  ncomp,
	}
	mem.CopyTo(unsafe.Pointer(&t.shadow[0]), int64(len(t.shadow)*8))
	return t
}

func (t *DeviceTensor) NumIntegrationPoints() int { return len(t.shadow) / t.ncomp }

func (t *DeviceTensor) NumComponents() int { return t.ncomp }

func (t *DeviceTensor) At(intPt, comp int) float64 { return t.shadow[intPt*t.ncomp+comp] }

func (t *DeviceTensor) Set(intPt, comp int, val float64) { t.shadow[intPt*t.ncomp+comp] = val }

func (t *DeviceTensor) Flush() {
	t.mem.CopyFrom(unsafe.Pointer(&t.shadow[0]), int64(len(t.shadow)*8))
}
