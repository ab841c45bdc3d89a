package element

import (
	"fmt"

	"github.com/notargets/hexkernel/views"
)

// ComputeDeformationGradients evaluates F = a * b^-1 at each integration
// point, where a and b sum the current and reference nodal coordinates
// against the natural-coordinate shape derivatives. The result is written
// in full 9-component engineering order.
func (e *Hex8) ComputeDeformationGradients(nodeReferenceCoords, nodeDisplacements views.VectorView,
	deformationGradients views.TensorView) error {

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkVectorShape(nodeDisplacements, hexNumNodes, "nodeDisplacements")
	checkTensorShape(deformationGradients, hexNumIntPts, "deformationGradients")
	if deformationGradients.NumComponents() != NumFullTensorComponents {
		panic(fmt.Sprintf("element: deformationGradients has %d components, want %d",
			deformationGradients.NumComponents(), NumFullTensorComponents))
	}

	var a, b, bInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.currentJacobian(ip, nodeReferenceCoords, nodeDisplacements, &a)
		e.referenceJacobian(ip, nodeReferenceCoords, &b)

		if _, err := Invert3x3(&b, &bInv); err != nil {
			return fmt.Errorf("deformation gradient: %w", markIntPt(err, ip))
		}

		var f [3][3]float64
		for i := 0; i < 3; i++ {
			for k := 0; k < 3; k++ {
				f[i][k] = a[i][0]*bInv[0][k] + a[i][1]*bInv[1][k] + a[i][2]*bInv[2][k]
			}
		}

		deformationGradients.Set(ip, FullXX, f[0][0])
		deformationGradients.Set(ip, FullXY, f[0][1])
		deformationGradients.Set(ip, FullXZ, f[0][2])
		deformationGradients.Set(ip, FullYX, f[1][0])
		deformationGradients.Set(ip, FullYY, f[1][1])
		deformationGradients.Set(ip, FullYZ, f[1][2])
		deformationGradients.Set(ip, FullZX, f[2][0])
		deformationGradients.Set(ip, FullZY, f[2][1])
		deformationGradients.Set(ip, FullZZ, f[2][2])
	}
	return nil
}

// ComputeVolume integrates the current-configuration Jacobian determinant
// over the element.
func (e *Hex8) ComputeVolume(nodeReferenceCoords, nodeDisplacements views.VectorView) (float64, error) {
	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkVectorShape(nodeDisplacements, hexNumNodes, "nodeDisplacements")

	var volume float64
	var a, aInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.currentJacobian(ip, nodeReferenceCoords, nodeDisplacements, &a)
		jacDet, err := Invert3x3(&a, &aInv)
		if err != nil {
			return 0, fmt.Errorf("volume: %w", markIntPt(err, ip))
		}
		volume += e.intWts[ip] * jacDet
	}
	return volume, nil
}

// ComputeVolumeAverage reduces an integration-point field of 1, 6 or 9
// components to a volume-weighted element value: each component accumulates
// field * w * det, the volume accumulates w * det, and the accumulated
// components are divided by the volume. Returns the element volume.
func (e *Hex8) ComputeVolumeAverage(nodeReferenceCoords, nodeDisplacements views.VectorView,
	intPtQuantities views.TensorView, volAveQuantity views.ComponentView) (volume float64, err error) {

	checkVectorShape(nodeReferenceCoords, hexNumNodes, "nodeReferenceCoords")
	checkVectorShape(nodeDisplacements, hexNumNodes, "nodeDisplacements")
	checkTensorShape(intPtQuantities, hexNumIntPts, "intPtQuantities")
	numQuantities := intPtQuantities.NumComponents()
	if volAveQuantity.NumComponents() != numQuantities {
		panic(fmt.Sprintf("element: volAveQuantity has %d components, field has %d",
			volAveQuantity.NumComponents(), numQuantities))
	}

	volAve := make([]float64, numQuantities)
	var a, aInv [3][3]float64
	for ip := 0; ip < hexNumIntPts; ip++ {
		e.currentJacobian(ip, nodeReferenceCoords, nodeDisplacements, &a)
		jacDet, errInv := Invert3x3(&a, &aInv)
		if errInv != nil {
			return 0, fmt.Errorf("volume average: %w", markIntPt(errInv, ip))
		}
		volume += e.intWts[ip] * jacDet
		for i := 0; i < numQuantities; i++ {
			volAve[i] += intPtQuantities.At(ip, i) * e.intWts[ip] * jacDet
		}
	}

	for i := 0; i < numQuantities; i++ {
		volAveQuantity.Set(i, volAve[i]/volume)
	}
	return volume, nil
}
