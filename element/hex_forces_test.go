package element

import (
	"errors"
	"math"
	"testing"

	"github.com/notargets/hexkernel/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// uniformStress fills an integration-point stress buffer with the same
// 6-component symmetric tensor at every point.
func uniformStress(sig [NumSymTensorComponents]float64) views.HostTensor {
	data := make([]float64, hexNumIntPts*NumSymTensorComponents)
	for ip := 0; ip < hexNumIntPts; ip++ {
		copy(data[ip*NumSymTensorComponents:], sig[:])
	}
	return views.NewHostTensor(data, NumSymTensorComponents)
}

func TestHex8NodalForcesZeroStress(t *testing.T) {
	hex := NewHex8()
	ref := views.NewHostVector(distortedHexCoords(), 3)
	disp := views.NewHostVector(zeroDisplacements(), 3)

	forces := views.NewHostVector(make([]float64, hexNumNodes*hexDim), 3)
	require.NoError(t, hex.ComputeNodalForces(ref, disp,
		uniformStress([NumSymTensorComponents]float64{}), forces))

	for n := 0; n < hexNumNodes; n++ {
		for d := 0; d < hexDim; d++ {
			assert.Equal(t, 0.0, forces.At(n, d))
		}
	}
}

func TestHex8NodalForcesSelfEquilibrated(t *testing.T) {
	hex := NewHex8()
	ref := views.NewHostVector(distortedHexCoords(), 3)
	disp := views.NewHostVector(zeroDisplacements(), 3)

	// Any spatially constant stress produces zero net force on the element
	stress := uniformStress([NumSymTensorComponents]float64{37.0, -12.0, 5.0, 8.0, -3.0, 2.0})
	forces := views.NewHostVector(make([]float64, hexNumNodes*hexDim), 3)
	require.NoError(t, hex.ComputeNodalForces(ref, disp, stress, forces))

	for d := 0; d < hexDim; d++ {
		var sum float64
		for n := 0; n < hexNumNodes; n++ {
			sum += forces.At(n, d)
		}
		assert.InDelta(t, 0.0, sum, 1e-12)
	}
}

func TestHex8NodalForcesUniaxialUnitCube(t *testing.T) {
	hex := NewHex8()
	ref := unitCubeCoords()
	disp := views.NewHostVector(zeroDisplacements(), 3)

	var sig [NumSymTensorComponents]float64
	sig[SymXX] = 1.0
	forces := views.NewHostVector(make([]float64, hexNumNodes*hexDim), 3)
	require.NoError(t, hex.ComputeNodalForces(views.NewHostVector(ref, 3), disp,
		uniformStress(sig), forces))

	// Uniform uniaxial stress on the unit cube: each face node carries a
	// quarter of the face traction, signed against the outward normal.
	for n := 0; n < hexNumNodes; n++ {
		want := 0.25
		if ref[hexDim*n] > 0.5 {
			want = -0.25
		}
		assert.InDelta(t, want, forces.At(n, 0), 1e-12, "node %d", n)
		assert.InDelta(t, 0.0, forces.At(n, 1), 1e-12)
		assert.InDelta(t, 0.0, forces.At(n, 2), 1e-12)
	}
}

func TestHex8NodalForcesDegenerateGeometry(t *testing.T) {
	hex := NewHex8()
	ref := unitCubeCoords()
	// Collapse the element by folding the top face onto the bottom face
	disp := make([]float64, hexNumNodes*hexDim)
	for n := 4; n < hexNumNodes; n++ {
		disp[hexDim*n+2] = -1.0
	}

	var sig [NumSymTensorComponents]float64
	sig[SymXX] = 1.0
	forces := views.NewHostVector(make([]float64, hexNumNodes*hexDim), 3)
	err := hex.ComputeNodalForces(views.NewHostVector(ref, 3), views.NewHostVector(disp, 3),
		uniformStress(sig), forces)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

// isotropicTangent fills a material tangent buffer with the standard
// isotropic elasticity operator in engineering order at every integration
// point.
func isotropicTangent(lambda, mu float64) []float64 {
	var c [36]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[6*i+j] = lambda
		}
		c[6*i+i] += 2.0 * mu
		c[6*(i+3)+(i+3)] = mu
	}
	buf := make([]float64, hexNumIntPts*36)
	for ip := 0; ip < hexNumIntPts; ip++ {
		copy(buf[36*ip:], c[:])
	}
	return buf
}

func TestHex8TangentSymmetricPositiveDiagonal(t *testing.T) {
	hex := NewHex8()
	ref := views.NewHostVector(distortedHexCoords(), 3)
	disp := views.NewHostVector(zeroDisplacements(), 3)

	tangent := mat.NewSymDense(hexNumNodes*hexDim, nil)
	require.NoError(t, hex.ComputeTangent(ref, disp, isotropicTangent(120.0e9, 80.0e9), tangent))

	n, _ := tangent.Dims()
	for i := 0; i < n; i++ {
		assert.Greater(t, tangent.At(i, i), 0.0, "diagonal %d", i)
		for j := 0; j < n; j++ {
			assert.Equal(t, tangent.At(i, j), tangent.At(j, i))
		}
	}
}

func TestHex8TangentAnnihilatesRigidTranslation(t *testing.T) {
	hex := NewHex8()
	ref := views.NewHostVector(distortedHexCoords(), 3)
	disp := views.NewHostVector(zeroDisplacements(), 3)

	tangent := mat.NewSymDense(hexNumNodes*hexDim, nil)
	require.NoError(t, hex.ComputeTangent(ref, disp, isotropicTangent(1.0, 1.0), tangent))

	// A rigid translation mode produces no restoring force: K * u_rigid = 0
	n, _ := tangent.Dims()
	var maxAbs float64
	for i := 0; i < n; i++ {
		if a := math.Abs(tangent.At(i, i)); a > maxAbs {
			maxAbs = a
		}
	}
	for d := 0; d < hexDim; d++ {
		for i := 0; i < n; i++ {
			var sum float64
			for node := 0; node < hexNumNodes; node++ {
				sum += tangent.At(i, hexDim*node+d)
			}
			assert.InDelta(t, 0.0, sum, 1e-12*maxAbs, "row %d direction %d", i, d)
		}
	}
}

func TestHex8TangentScalesWithMaterialTangent(t *testing.T) {
	hex := NewHex8()
	ref := views.NewHostVector(distortedHexCoords(), 3)
	disp := views.NewHostVector(zeroDisplacements(), 3)

	base := isotropicTangent(2.0, 3.0)
	scaled := make([]float64, len(base))
	for i, v := range base {
		scaled[i] = 4.0 * v
	}

	k1 := mat.NewSymDense(hexNumNodes*hexDim, nil)
	k4 := mat.NewSymDense(hexNumNodes*hexDim, nil)
	require.NoError(t, hex.ComputeTangent(ref, disp, base, k1))
	require.NoError(t, hex.ComputeTangent(ref, disp, scaled, k4))

	n, _ := k1.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, 4.0*k1.At(i, j), k4.At(i, j), 1e-9*math.Abs(k4.At(i, j))+1e-12)
		}
	}
}
