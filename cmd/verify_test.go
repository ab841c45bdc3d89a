package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hexkernel/element"
	"github.com/notargets/hexkernel/views"
)

func TestMaterialParse(t *testing.T) {
	yamlData := []byte(`
Title: Aluminum
Density: 2700.0
BulkModulus: 7.6e10
ShearModulus: 2.6e10
`)
	var m Material
	require.NoError(t, m.Parse(yamlData))
	assert.Equal(t, "Aluminum", m.Title)
	assert.Equal(t, 2700.0, m.Density)

	// c_d = sqrt((K + 4G/3) / rho)
	want := math.Sqrt((7.6e10 + 4.0*2.6e10/3.0) / 2700.0)
	assert.InDelta(t, want, m.DilatationalWaveSpeed(), 1.e-9)
}

func TestMaterialParseRejectsNonPhysical(t *testing.T) {
	var m Material
	assert.Error(t, m.Parse([]byte("Density: -1.0\nBulkModulus: 1.0\nShearModulus: 1.0")))
	assert.Error(t, m.Parse([]byte("Density: 1.0\nBulkModulus: 0.0\nShearModulus: 1.0")))
	assert.Error(t, m.Parse([]byte("Density: [broken")))
}

func TestBlockMeshUnperturbedGeometry(t *testing.T) {
	var (
		mesh = NewBlockMesh(3, 2, 2, 0.0)
		hex  = element.NewHex8()
	)
	require.Equal(t, 12, mesh.NumElements())

	zeros := views.NewHostVector(make([]float64, 24), 3)
	for e := 0; e < mesh.NumElements(); e++ {
		refCoords := views.NewHostVector(mesh.ElementCoords(e), 3)
		vol, err := hex.ComputeVolume(refCoords, zeros)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, vol, 1.e-12, "element %d", e)
		assert.InDelta(t, 1.0, hex.ComputeCharacteristicLength(refCoords), 1.e-12)
	}
}

func TestBlockMeshPerturbedElementsStayValid(t *testing.T) {
	var (
		mesh = NewBlockMesh(4, 4, 4, 0.1)
		hex  = element.NewHex8()
	)
	zeros := views.NewHostVector(make([]float64, 24), 3)
	var total float64
	for e := 0; e < mesh.NumElements(); e++ {
		refCoords := views.NewHostVector(mesh.ElementCoords(e), 3)
		vol, err := hex.ComputeVolume(refCoords, zeros)
		require.NoError(t, err, "element %d", e)
		assert.Greater(t, vol, 0.0)
		total += vol
	}
	// Interior perturbation redistributes volume between neighbors but the
	// boundary faces stay planar, so the block volume is exact.
	assert.InDelta(t, 64.0, total, 1.e-9)
}

func TestBlockMeshSharedFacesConsistent(t *testing.T) {
	mesh := NewBlockMesh(2, 1, 1, 0.2)
	// Element 0's +X face nodes (1,2,6,5) are element 1's -X face nodes (0,3,7,4).
	left, right := mesh.Elems[0], mesh.Elems[1]
	assert.Equal(t, left[1], right[0])
	assert.Equal(t, left[2], right[3])
	assert.Equal(t, left[6], right[7])
	assert.Equal(t, left[5], right[4])
}
