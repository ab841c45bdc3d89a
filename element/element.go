// Package element implements per-element kernels for explicit structural
// dynamics: mass, characteristic length, deformation gradients, internal
// nodal forces, tangent stiffness, and volume-averaged integration-point
// fields. One concrete topology is provided, the 8-node trilinear
// hexahedron with a 2x2x2 Gauss rule.
package element

import (
	"github.com/notargets/hexkernel/views"
	"gonum.org/v1/gonum/mat"
)

// Properties contains metadata describing an element type.
type Properties struct {
	Name                 string // Full descriptive name (e.g., "Lagrange Hexahedron Order 1")
	ShortName            string // Abbreviated name (e.g., "Hex8")
	Dim                  int    // Spatial dimension
	NumNodes             int    // Nodes per element
	NumIntegrationPoints int    // Integration points per element
}

// Element is the capability contract every element topology implements.
//
// Every operation is a pure function of its explicit inputs and the
// element's immutable quadrature/shape tables, so one Element value may
// serve arbitrarily many physical elements concurrently as long as each
// call owns its input/output views exclusively.
//
// Operations taking a (reference, displacement) view pair evaluate the
// current configuration as reference + displacement per node. Geometric
// degeneracy (a collapsed or inverted element) surfaces as a
// DegenerateGeometryError; mismatched view shapes are programming errors
// and panic.
type Element interface {
	GetProperties() Properties
	Dim() int
	NumNodesPerElement() int
	NumIntegrationPointsPerElement() int

	// ComputeLumpedMass integrates density over the reference configuration
	// and writes one mass value per node. The nodal masses sum to the
	// element's total integrated mass.
	ComputeLumpedMass(density float64, nodeReferenceCoords views.VectorView, lumpedMass views.ScalarView) error

	// ComputeCharacteristicLength returns a representative element size for
	// stable explicit time-step selection. A zero or negative result
	// signals a degenerate element.
	ComputeCharacteristicLength(nodeCoords views.VectorView) float64

	// ComputeVolume integrates the current-configuration Jacobian
	// determinant over the element.
	ComputeVolume(nodeReferenceCoords, nodeDisplacements views.VectorView) (float64, error)

	// ComputeVolumeAverage reduces per-integration-point fields (1, 6, or 9
	// components in engineering order) to a single volume-weighted element
	// value and returns the element volume.
	ComputeVolumeAverage(nodeReferenceCoords, nodeDisplacements views.VectorView,
		intPtQuantities views.TensorView, volAveQuantity views.ComponentView) (volume float64, err error)

	// ComputeDeformationGradients writes the deformation gradient at each
	// integration point in full 9-component engineering order.
	ComputeDeformationGradients(nodeReferenceCoords, nodeDisplacements views.VectorView,
		deformationGradients views.TensorView) error

	// ComputeTangent integrates the supplied material tangent (6x6 per
	// integration point, engineering order, 36 entries each) into the
	// element tangent stiffness. The result is symmetric with one row and
	// column per nodal degree of freedom.
	ComputeTangent(nodeReferenceCoords, nodeDisplacements views.VectorView,
		materialTangent []float64, tangent *mat.SymDense) error

	// ComputeNodalForces integrates the divergence of the supplied
	// integration-point stresses (symmetric, 6 components) into equivalent
	// internal nodal forces and writes them to the force view.
	ComputeNodalForces(nodeReferenceCoords, nodeDisplacements views.VectorView,
		intPtStresses views.TensorView, nodeForces views.VectorView) error
}
