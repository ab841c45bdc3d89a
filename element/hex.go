package element

import (
	"math"

	"github.com/notargets/hexkernel/views"
)

const (
	hexDim       = 3
	hexNumNodes  = 8
	hexNumIntPts = 8
)

// hexNodeSigns is the natural-coordinate sign pattern of the 8 vertices.
// The same pattern places the 2x2x2 Gauss points, scaled to +-1/sqrt(3).
var hexNodeSigns = [hexNumNodes][hexDim]float64{
	{-1, -1, -1},
	{+1, -1, -1},
	{+1, +1, -1},
	{-1, +1, -1},
	{-1, -1, +1},
	{+1, -1, +1},
	{+1, +1, +1},
	{-1, +1, +1},
}

// Hex8 is the 8-node trilinear hexahedron with a fixed 2x2x2 Gauss rule.
// The quadrature and shape-function tables are built once at construction
// and are read-only afterward; per-call state lives entirely on the stack,
// so a single Hex8 serves any number of physical elements concurrently.
type Hex8 struct {
	intPts     [hexNumIntPts * hexDim]float64
	intWts     [hexNumIntPts]float64
	shapeVals  [hexNumIntPts * hexNumNodes]float64          // [ip*8 + node]
	shapeDeriv [hexNumIntPts * hexNumNodes * hexDim]float64 // [24*ip + 3*node + comp]
}

// NewHex8 builds the quadrature rule and shape-function tables.
func NewHex8() *Hex8 {
	e := &Hex8{}
	g := 1.0 / math.Sqrt(3.0)
	for ip := 0; ip < hexNumIntPts; ip++ {
		for d := 0; d < hexDim; d++ {
			e.intPts[hexDim*ip+d] = g * hexNodeSigns[ip][d]
		}
		// Unit weights: the 1/8 trilinear normalization is carried by the
		// shape-function values themselves.
		e.intWts[ip] = 1.0
	}
	for ip := 0; ip < hexNumIntPts; ip++ {
		r := e.intPts[hexDim*ip]
		s := e.intPts[hexDim*ip+1]
		t := e.intPts[hexDim*ip+2]
		shapeFunctionValues(r, s, t, e.shapeVals[hexNumNodes*ip:hexNumNodes*(ip+1)])
		shapeFunctionDerivatives(r, s, t, e.shapeDeriv[hexNumNodes*hexDim*ip:hexNumNodes*hexDim*(ip+1)])
	}
	return e
}

// shapeFunctionValues evaluates the 8 trilinear basis functions,
// N_n = 1/8 (1 + s_r r)(1 + s_s s)(1 + s_t t), at a natural coordinate.
func shapeFunctionValues(r, s, t float64, vals []float64) {
	const c = 0.125
	for n := 0; n < hexNumNodes; n++ {
		sg := &hexNodeSigns[n]
		vals[n] = c * (1.0 + sg[0]*r) * (1.0 + sg[1]*s) * (1.0 + sg[2]*t)
	}
}

// shapeFunctionDerivatives evaluates the natural-coordinate derivative
// vector of each basis function, node-major then coordinate-minor.
func shapeFunctionDerivatives(r, s, t float64, derivs []float64) {
	const c = 0.125
	for n := 0; n < hexNumNodes; n++ {
		sg := &hexNodeSigns[n]
		derivs[hexDim*n] = c * sg[0] * (1.0 + sg[1]*s) * (1.0 + sg[2]*t)
		derivs[hexDim*n+1] = c * sg[1] * (1.0 + sg[0]*r) * (1.0 + sg[2]*t)
		derivs[hexDim*n+2] = c * sg[2] * (1.0 + sg[0]*r) * (1.0 + sg[1]*s)
	}
}

func (e *Hex8) GetProperties() Properties {
	return Properties{
		Name:                 "Lagrange Hexahedron Order 1",
		ShortName:            "Hex8",
		Dim:                  hexDim,
		NumNodes:             hexNumNodes,
		NumIntegrationPoints: hexNumIntPts,
	}
}

func (e *Hex8) Dim() int { return hexDim }

func (e *Hex8) NumNodesPerElement() int { return hexNumNodes }

func (e *Hex8) NumIntegrationPointsPerElement() int { return hexNumIntPts }

// IntegrationPoint returns the natural coordinates and weight of point ip.
func (e *Hex8) IntegrationPoint(ip int) (r, s, t, w float64) {
	return e.intPts[hexDim*ip], e.intPts[hexDim*ip+1], e.intPts[hexDim*ip+2], e.intWts[ip]
}

// ShapeValue returns N_node evaluated at integration point ip.
func (e *Hex8) ShapeValue(ip, node int) float64 {
	return e.shapeVals[hexNumNodes*ip+node]
}

// referenceJacobian accumulates the isoparametric map Jacobian at
// integration point ip from the reference coordinates:
// a = sum_n X_n (dN_n/dxi)^T.
func (e *Hex8) referenceJacobian(ip int, refCoords views.VectorView, a *[3][3]float64) {
	*a = [3][3]float64{}
	base := hexNumNodes * hexDim * ip
	for n := 0; n < hexNumNodes; n++ {
		sfd := e.shapeDeriv[base+hexDim*n : base+hexDim*n+3]
		for i := 0; i < hexDim; i++ {
			x := refCoords.At(n, i)
			a[i][0] += x * sfd[0]
			a[i][1] += x * sfd[1]
			a[i][2] += x * sfd[2]
		}
	}
}

// currentJacobian is referenceJacobian evaluated in the current
// configuration, reference + displacement per node.
func (e *Hex8) currentJacobian(ip int, refCoords, displacements views.VectorView, a *[3][3]float64) {
	*a = [3][3]float64{}
	base := hexNumNodes * hexDim * ip
	for n := 0; n < hexNumNodes; n++ {
		sfd := e.shapeDeriv[base+hexDim*n : base+hexDim*n+3]
		for i := 0; i < hexDim; i++ {
			x := refCoords.At(n, i) + displacements.At(n, i)
			a[i][0] += x * sfd[0]
			a[i][1] += x * sfd[1]
			a[i][2] += x * sfd[2]
		}
	}
}

// spatialShapeDerivative converts the natural-coordinate derivative of node
// n at integration point ip into physical-coordinate form using the inverse
// Jacobian: dN/dx_k = sum_j dN/dxi_j * aInv[j][k].
func (e *Hex8) spatialShapeDerivative(ip, n int, aInv *[3][3]float64) (dx, dy, dz float64) {
	base := hexNumNodes*hexDim*ip + hexDim*n
	d0 := e.shapeDeriv[base]
	d1 := e.shapeDeriv[base+1]
	d2 := e.shapeDeriv[base+2]
	dx = d0*aInv[0][0] + d1*aInv[1][0] + d2*aInv[2][0]
	dy = d0*aInv[0][1] + d1*aInv[1][1] + d2*aInv[2][1]
	dz = d0*aInv[0][2] + d1*aInv[1][2] + d2*aInv[2][2]
	return
}

// ComputeCharacteristicLength returns the minimum inter-node distance,
// the conservative element size for explicit time-step selection. A zero
// result means two nodes coincide and the element is degenerate.
func (e *Hex8) ComputeCharacteristicLength(nodeCoords views.VectorView) float64 {
	checkVectorShape(nodeCoords, hexNumNodes, "nodeCoords")
	minDistSq := math.MaxFloat64
	for n := 0; n < hexNumNodes; n++ {
		nx := nodeCoords.At(n, 0)
		ny := nodeCoords.At(n, 1)
		nz := nodeCoords.At(n, 2)
		for m := n + 1; m < hexNumNodes; m++ {
			dx := nx - nodeCoords.At(m, 0)
			dy := ny - nodeCoords.At(m, 1)
			dz := nz - nodeCoords.At(m, 2)
			distSq := dx*dx + dy*dy + dz*dz
			if distSq < minDistSq {
				minDistSq = distSq
			}
		}
	}
	return math.Sqrt(minDistSq)
}
