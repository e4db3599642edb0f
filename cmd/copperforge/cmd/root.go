package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
)

var rootCmd = &cobra.Command{
	Use:   "copperforge",
	Short: "CopperForge - programmatic KiCad footprint generation",
	Long: `CopperForge generates KiCad footprint files (.kicad_mod) from
component descriptions.

Examples:
  copperforge footprint write --preset r0805 --out lib/   # Write a built-in preset
  copperforge footprint write --spec chip.toml            # Write a chip described in TOML
  copperforge stackup info                                # Show the standard board stackup`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(charmlog.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
