package element

import "math"

// DetTol is the minimum Jacobian determinant magnitude treated as
// invertible. Below it the geometry is reported as degenerate rather than
// dividing by a vanishing determinant.
const DetTol = 1.0e-14

// Invert3x3 computes the determinant of a by cofactor expansion and its
// inverse by the adjugate. Every reference-to-current mapping in this
// package funnels through here so the degeneracy check is uniform.
func Invert3x3(a, aInv *[3][3]float64) (det float64, err error) {
	minor0 := a[1][1]*a[2][2] - a[1][2]*a[2][1]
	minor1 := a[1][0]*a[2][2] - a[1][2]*a[2][0]
	minor2 := a[1][0]*a[2][1] - a[1][1]*a[2][0]
	det = a[0][0]*minor0 - a[0][1]*minor1 + a[0][2]*minor2

	if math.Abs(det) <= DetTol {
		return det, &DegenerateGeometryError{Det: det}
	}

	invDet := 1.0 / det
	aInv[0][0] = invDet * minor0
	aInv[0][1] = -invDet * (a[0][1]*a[2][2] - a[0][2]*a[2][1])
	aInv[0][2] = invDet * (a[0][1]*a[1][2] - a[0][2]*a[1][1])
	aInv[1][0] = -invDet * minor1
	aInv[1][1] = invDet * (a[0][0]*a[2][2] - a[0][2]*a[2][0])
	aInv[1][2] = -invDet * (a[0][0]*a[1][2] - a[0][2]*a[1][0])
	aInv[2][0] = invDet * minor2
	aInv[2][1] = -invDet * (a[0][0]*a[2][1] - a[0][1]*a[2][0])
	aInv[2][2] = invDet * (a[0][0]*a[1][1] - a[0][1]*a[1][0])
	return det, nil
}
