package element

import (
	"errors"
	"fmt"

	"github.com/notargets/hexkernel/views"
)

// ErrDegenerateGeometry reports a collapsed or inverted element: a
// reference- or current-configuration Jacobian determinant at or below the
// numerical threshold. Callers match it with errors.Is.
var ErrDegenerateGeometry = errors.New("degenerate element geometry")

// DegenerateGeometryError carries the offending determinant and the
// integration point at which inversion failed.
type DegenerateGeometryError struct {
	Det   float64
	IntPt int
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate element geometry: |det| = %g at integration point %d", e.Det, e.IntPt)
}

func (e *DegenerateGeometryError) Unwrap() error { return ErrDegenerateGeometry }

// markIntPt records the integration point on a degeneracy error before the
// kernel wraps it. Invert3x3 itself has no integration-point context.
func markIntPt(err error, ip int) error {
	var dg *DegenerateGeometryError
	if errors.As(err, &dg) {
		dg.IntPt = ip
	}
	return err
}

// Shape mismatches between caller buffers and the topology constants are
// contract violations, not runtime conditions: they panic.

func checkVectorShape(v views.VectorView, numNodes int, name string) {
	if v.NumNodes() != numNodes {
		panic(fmt.Sprintf("element: %s has %d nodes, topology requires %d", name, v.NumNodes(), numNodes))
	}
}

func checkScalarShape(s views.ScalarView, numNodes int, name string) {
	if s.NumNodes() != numNodes {
		panic(fmt.Sprintf("element: %s has %d entries, topology requires %d", name, s.NumNodes(), numNodes))
	}
}

func checkTensorShape(t views.TensorView, numIntPts int, name string) {
	if t.NumIntegrationPoints() != numIntPts {
		panic(fmt.Sprintf("element: %s has %d integration points, topology requires %d",
			name, t.NumIntegrationPoints(), numIntPts))
	}
	switch t.NumComponents() {
	case NumScalarComponents, NumSymTensorComponents, NumFullTensorComponents:
	default:
		panic(fmt.Sprintf("element: %s has %d components per integration point, want 1, 6 or 9",
			name, t.NumComponents()))
	}
}
