// Package views provides indexed 2-D accessors over node-major and
// integration-point-major numeric buffers. The element kernels are written
// once against these contracts; host slices and device-resident buffers
// supply interchangeable backends.
package views

import "fmt"

// VectorView exposes per-node vector data (coordinates, displacements,
// forces) as (node, component) indexed values over node-major storage.
type VectorView interface {
	NumNodes() int
	At(node, comp int) float64
	Set(node, comp int, val float64)
}

// ScalarView exposes one value per node (lumped mass).
type ScalarView interface {
	NumNodes() int
	At(node int) float64
	Set(node int, val float64)
}

// TensorView exposes per-integration-point tensor data as
// (intPt, component) indexed values, integration-point-major. The component
// count is 1 for scalar fields, 6 for symmetric tensors and 9 for full
// tensors in engineering order.
type TensorView interface {
	NumIntegrationPoints() int
	NumComponents() int
	At(intPt, comp int) float64
	Set(intPt, comp int, val float64)
}

// ComponentView exposes a single flat component sequence, used for
// element-level reductions such as volume-averaged tensors.
type ComponentView interface {
	NumComponents() int
	At(comp int) float64
	Set(comp int, val float64)
}

// HostVector wraps a caller-owned node-major slice as a VectorView.
type HostVector struct {
	data []float64
	dim  int
}

// NewHostVector wraps data laid out as [node0_x, node0_y, node0_z, node1_x, ...].
func NewHostVector(data []float64, dim int) HostVector {
	if dim <= 0 || len(data)%dim != 0 {
		panic(fmt.Sprintf("views: vector buffer length %d is not a multiple of dim %d", len(data), dim))
	}
	return HostVector{data: data, dim: dim}
}

func (v HostVector) NumNodes() int { return len(v.data) / v.dim }

func (v HostVector) At(node, comp int) float64 { return v.data[node*v.dim+comp] }

func (v HostVector) Set(node, comp int, val float64) { v.data[node*v.dim+comp] = val }

// HostScalar wraps a caller-owned per-node slice as a ScalarView.
type HostScalar []float64

func (s HostScalar) NumNodes() int { return len(s) }

func (s HostScalar) At(node int) float64 { return s[node] }

func (s HostScalar) Set(node int, val float64) { s[node] = val }

// HostTensor wraps a caller-owned integration-point-major slice as a
// TensorView with ncomp components per integration point.
type HostTensor struct {
	data  []float64
	ncomp int
}

func NewHostTensor(data []float64, ncomp int) HostTensor {
	if ncomp <= 0 || len(data)%ncomp != 0 {
		panic(fmt.Sprintf("views: tensor buffer length %d is not a multiple of %d components", len(data), ncomp))
	}
	return HostTensor{data: data, ncomp: ncomp}
}

func (t HostTensor) NumIntegrationPoints() int { return len(t.data) / t.ncomp }

func (t HostTensor) NumComponents() int { return t.ncomp }

func (t HostTensor) At(intPt, comp int) float64 { return t.data[intPt*t.ncomp+comp] }

func (t HostTensor) Set(intPt, comp int, val float64) { t.data[intPt*t.ncomp+comp] = val }

// HostComponents wraps a flat component slice as a ComponentView.
type HostComponents []float64

func (c HostComponents) NumComponents() int { return len(c) }

func (c HostComponents) At(comp int) float64 { return c[comp] }

func (c HostComponents) Set(comp int, val float64) { c[comp] = val }
