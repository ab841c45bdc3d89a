package element

import (
	"fmt"

	"github.com/notargets/hexkernel/views"
	"gonum.org/v1/gonum/mat"
)

// ComputeLumpedMass integrates w * density * N_n * det over the reference
// configuration for each node. The nodal masses sum to the element's total
// integrated mass (quadrature-exact for the trilinear map).
func (e *Hex8) ComputeLumpedMass(density float64, nodeReferenceCoords views.VectorView,
	lumpedMass views.ScalarView) error {

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkScalarShape(lumpedMass, hexNumNodes, "lumpedMass")

	var mass [hexNumNodes]float64
	var a, aInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.referenceJacobian(ip, nodeReferenceCoords, &a)
		jacDet, err := Invert3x3(&a, &aInv)
		if err != nil {
			return fmt.Errorf("lumped mass: %w", markIntPt(err, ip))
		}
		wRho := e.intWts[ip] * density * jacDet
		for n := 0; n < hexNumNodes; n++ {
			mass[n] += wRho * e.shapeVals[hexNumNodes*ip+n]
		}
	}

	for n := 0; n < hexNumNodes; n++ {
		lumpedMass.Set(n, mass[n])
	}
	return nil
}

// ComputeConsistentMass builds the symmetric 8x8 consistent mass matrix,
// M_ij = sum_ip w * density * N_i * N_j * det. It is a building block for
// implicit solver paths; explicit integration uses ComputeLumpedMass. Under
// row-sum lumping each row of M sums to the corresponding lumped mass.
func (e *Hex8) ComputeConsistentMass(density float64,
	nodeReferenceCoords views.VectorView) (*mat.SymDense, error) {

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")

	var jacDet [hexNumIntPts]float64
	var a, aInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.referenceJacobian(ip, nodeReferenceCoords, &a)
		det, err := Invert3x3(&a, &aInv)
		if err != nil {
			return nil, fmt.Errorf("consistent mass: %w", markIntPt(err, ip))
		}
		jacDet[ip] = det
	}

	m := mat.NewSymDense(hexNumNodes, nil)
	for i := 0; i < hexNumNodes; i++ {
		for j := i; j < hexNumNodes; j++ {
			var mij float64
			for ip := 0; ip < hexNumIntPts; ip++ {
				mij += e.intWts[ip] * density *
					e.shapeVals[hexNumNodes*ip+i] * e.shapeVals[hexNumNodes*ip+j] * jacDet[ip]
			}
			m.SetSym(i, j, mij)
		}
	}
	return m, nil
}
