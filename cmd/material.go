package cmd

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"
)

// Material parameters obtained from the YAML input file
type Material struct {
	Title        string  `yaml:"Title"`
	Density      float64 `yaml:"Density"`      // mass per unit volume
	BulkModulus  float64 `yaml:"BulkModulus"`  // K
	ShearModulus float64 `yaml:"ShearModulus"` // G
}

func (m *Material) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return err
	}
	return m.Validate()
}

func (m *Material) Validate() error {
	if m.Density <= 0 {
		return fmt.Errorf("material density must be positive, got %g", m.Density)
	}
	if m.BulkModulus <= 0 || m.ShearModulus <= 0 {
		return fmt.Errorf("material moduli must be positive, got K=%g G=%g",
			m.BulkModulus, m.ShearModulus)
	}
	return nil
}

// DilatationalWaveSpeed returns sqrt((K + 4G/3) / rho), the fastest signal
// speed in the material and the one that limits the explicit time step.
func (m *Material) DilatationalWaveSpeed() float64 {
	return math.Sqrt((m.BulkModulus + 4.0*m.ShearModulus/3.0) / m.Density)
}

// LameParameters returns (lambda, mu) from the bulk and shear moduli.
func (m *Material) LameParameters() (lambda, mu float64) {
	lambda = m.BulkModulus - 2.0*m.ShearModulus/3.0
	mu = m.ShearModulus
	return
}

func (m *Material) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", m.Title)
	fmt.Printf("%12.5g\t\t= Density\n", m.Density)
	fmt.Printf("%12.5g\t\t= BulkModulus\n", m.BulkModulus)
	fmt.Printf("%12.5g\t\t= ShearModulus\n", m.ShearModulus)
	fmt.Printf("%12.5g\t\t= Dilatational Wave Speed\n", m.DilatationalWaveSpeed())
}

// defaultMaterial is mild steel in SI units, used when no YAML file is given.
func defaultMaterial() *Material {
	return &Material{
		Title:        "Mild Steel",
		Density:      7850.0,
		BulkModulus:  1.6e11,
		ShearModulus: 7.93e10,
	}
}
