package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hexkernel",
	Short: "Hexahedral element kernels for explicit structural dynamics",
	Long: `
Single-element kernels for the 8-node trilinear hexahedron: lumped and
consistent mass, characteristic length, deformation gradients, internal
nodal forces and the material tangent stiffness.

hexkernel verify `,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
