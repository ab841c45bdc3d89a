package element

import (
	"fmt"

	"github.com/notargets/hexkernel/views"
	"gonum.org/v1/gonum/mat"
)

// ComputeNodalForces integrates the divergence of the integration-point
// stresses against each node's spatial shape-derivative vector, scaled by
// w * det, accumulated over integration points and negated: the internal
// force opposes the stress divergence. Results are written to nodeForces.
func (e *Hex8) ComputeNodalForces(nodeReferenceCoords, nodeDisplacements views.VectorView,
	intPtStresses views.TensorView, nodeForces views.VectorView) error {

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkVectorShape(nodeDisplacements, hexNumNodes, "nodeDisplacements")
	checkVectorShape(nodeForces, hexNumNodes, "nodeForces")
	checkTensorShape(intPtStresses, hexNumIntPts, "intPtStresses")
	if intPtStresses.NumComponents() != NumSymTensorComponents {
		panic(fmt.Sprintf("element: intPtStresses has %d components, want %d",
			intPtStresses.NumComponents(), NumSymTensorComponents))
	}

	var force [hexNumNodes][hexDim]float64
	var a, aInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.currentJacobian(ip, nodeReferenceCoords, nodeDisplacements, &a)
		jacDet, err := Invert3x3(&a, &aInv)
		if err != nil {
			return fmt.Errorf("nodal forces: %w", markIntPt(err, ip))
		}
		wDet := jacDet * e.intWts[ip]

		for n := 0; n < hexNumNodes; n++ {
			dNdx, dNdy, dNdz := e.spatialShapeDerivative(ip, n, &aInv)

			f1 := dNdx*intPtStresses.At(ip, SymXX) +
				dNdy*intPtStresses.At(ip, SymYX) +
				dNdz*intPtStresses.At(ip, SymZX)
			f2 := dNdx*intPtStresses.At(ip, SymXY) +
				dNdy*intPtStresses.At(ip, SymYY) +
				dNdz*intPtStresses.At(ip, SymZY)
			f3 := dNdx*intPtStresses.At(ip, SymXZ) +
				dNdy*intPtStresses.At(ip, SymYZ) +
				dNdz*intPtStresses.At(ip, SymZZ)

			force[n][0] -= f1 * wDet
			force[n][1] -= f2 * wDet
			force[n][2] -= f3 * wDet
		}
	}

	for n := 0; n < hexNumNodes; n++ {
		nodeForces.Set(n, 0, force[n][0])
		nodeForces.Set(n, 1, force[n][1])
		nodeForces.Set(n, 2, force[n][2])
	}
	return nil
}

// ComputeTangent integrates B^T C B over the element, where B is the 6x24
// strain-displacement matrix built from the spatial shape derivatives and C
// is the caller-supplied material tangent: 36 entries (6x6, engineering
// order) per integration point, assumed symmetric. The element tangent has
// one row and column per nodal degree of freedom.
func (e *Hex8) ComputeTangent(nodeReferenceCoords, nodeDisplacements views.VectorView,
	materialTangent []float64, tangent *mat.SymDense) error {

	const dofs = hexNumNodes * hexDim

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkVectorShape(nodeDisplacements, hexNumNodes, "nodeDisplacements")
	if len(materialTangent) != NumSymTensorComponents*NumSymTensorComponents*hexNumIntPts {
		panic(fmt.Sprintf("element: materialTangent has %d entries, want %d",
			len(materialTangent), NumSymTensorComponents*NumSymTensorComponents*hexNumIntPts))
	}
	if r, _ := tangent.Dims(); r != dofs {
		panic(fmt.Sprintf("element: tangent is %dx%d, want %dx%d", r, r, dofs, dofs))
	}

	var k [dofs][dofs]float64
	var a, aInv [3][3]float64
	var b [NumSymTensorComponents][dofs]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.currentJacobian(ip, nodeReferenceCoords, nodeDisplacements, &a)
		jacDet, err := Invert3x3(&a, &aInv)
		if err != nil {
			return fmt.Errorf("tangent: %w", markIntPt(err, ip))
		}
		wDet := jacDet * e.intWts[ip]

		b = [NumSymTensorComponents][dofs]float64{}
		for n := 0; n < hexNumNodes; n++ {
			dNdx, dNdy, dNdz := e.spatialShapeDerivative(ip, n, &aInv)
			b[SymXX][hexDim*n] = dNdx
			b[SymYY][hexDim*n+1] = dNdy
			b[SymZZ][hexDim*n+2] = dNdz
			b[SymXY][hexDim*n] = dNdy
			b[SymXY][hexDim*n+1] = dNdx
			b[SymYZ][hexDim*n+1] = dNdz
			b[SymYZ][hexDim*n+2] = dNdy
			b[SymZX][hexDim*n] = dNdz
			b[SymZX][hexDim*n+2] = dNdx
		}

		c := materialTangent[36*ip : 36*(ip+1)]
		for i := 0; i < dofs; i++ {
			for j := i; j < dofs; j++ {
				var kij float64
				for p := 0; p < NumSymTensorComponents; p++ {
					if b[p][i] == 0 {
						continue
					}
					for q := 0; q < NumSymTensorComponents; q++ {
						kij += b[p][i] * c[NumSymTensorComponents*p+q] * b[q][j]
					}
				}
				k[i][j] += kij * wDet
			}
		}
	}

	for i := 0; i < dofs; i++ {
		for j := i; j < dofs; j++ {
			tangent.SetSym(i, j, k[i][j])
		}
	}
	return nil
}
