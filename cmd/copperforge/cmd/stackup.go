package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/CopperForge/pkg/stackup"
)

var (
	stackupWidth  float64
	stackupHeight float64
)

var stackupCmd = &cobra.Command{
	Use:   "stackup",
	Short: "Board stackup information",
	Long:  `Commands for inspecting the physical board stackup`,
}

var stackupInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the standard 4-layer stackup",
	Long:  `Prints the standard 4-layer stackup with per-layer thickness and Z extents.`,
	RunE:  runStackupInfo,
}

func init() {
	rootCmd.AddCommand(stackupCmd)
	stackupCmd.AddCommand(stackupInfoCmd)

	stackupInfoCmd.Flags().Float64Var(&stackupWidth, "width", 50.0, "board width in mm")
	stackupInfoCmd.Flags().Float64Var(&stackupHeight, "height", 40.0, "board height in mm")
}

func runStackupInfo(cmd *cobra.Command, args []string) error {
	s := stackup.StandardFourLayer(stackupWidth, stackupHeight)
	extents := s.ZExtents()

	fmt.Printf("Standard 4-layer stackup (%g x %g mm board)\n\n", s.Width, s.Height)
	fmt.Printf("%-12s %-12s %10s %20s\n", "Layer", "Material", "Thickness", "Z extent")
	// Print top to bottom so the table reads like a cross-section.
	for i := len(s.Layers) - 1; i >= 0; i-- {
		layer := s.Layers[i]
		fmt.Printf("%-12s %-12s %8.2fmm %9.2f..%.2fmm\n",
			layer.Name, layer.Kind, layer.Thickness, extents[i][0], extents[i][1])
	}
	fmt.Printf("\nTotal thickness: %.2fmm, copper layers: %d\n", s.TotalThickness(), s.CopperCount())
	return nil
}
