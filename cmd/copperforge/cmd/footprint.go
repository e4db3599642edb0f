package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/CopperForge/pkg/kicad/footprint"
	"github.com/OpenTraceLab/CopperForge/pkg/substrate"
	"github.com/OpenTraceLab/CopperForge/pkg/substrate/components"
)

var (
	footprintOut     string
	footprintPresets []string
	footprintSpec    string
)

// presetBuilders maps preset names to descriptor constructors. The
// value argument is a placeholder part value for generated libraries.
var presetBuilders = map[string]func() substrate.BoardComposableObject{
	"r0805": func() substrate.BoardComposableObject { return components.NewResistor0805("10k") },
	"c0402": func() substrate.BoardComposableObject { return components.NewCapacitor0402("100nF") },
}

var footprintCmd = &cobra.Command{
	Use:   "footprint",
	Short: "KiCad footprint generation",
	Long:  `Commands for generating KiCad footprint files (.kicad_mod)`,
}

var footprintWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Serialize footprints to .kicad_mod files",
	Long: `Serializes built-in presets and/or a TOML chip spec to .kicad_mod
files in the output directory.

Available presets: r0805, c0402`,
	RunE: runFootprintWrite,
}

func init() {
	rootCmd.AddCommand(footprintCmd)
	footprintCmd.AddCommand(footprintWriteCmd)

	footprintWriteCmd.Flags().StringVarP(&footprintOut, "out", "o", ".", "output directory")
	footprintWriteCmd.Flags().StringSliceVarP(&footprintPresets, "preset", "p", nil, "built-in presets to write")
	footprintWriteCmd.Flags().StringVarP(&footprintSpec, "spec", "s", "", "TOML chip spec file")
}

func runFootprintWrite(cmd *cobra.Command, args []string) error {
	var objects []substrate.BoardComposableObject

	for _, name := range footprintPresets {
		build, ok := presetBuilders[name]
		if !ok {
			return fmt.Errorf("unknown preset %q", name)
		}
		objects = append(objects, build())
	}

	if footprintSpec != "" {
		chip, err := loadChipSpec(footprintSpec)
		if err != nil {
			return err
		}
		objects = append(objects, chip)
	}

	if len(objects) == 0 {
		return fmt.Errorf("nothing to write: pass --preset and/or --spec")
	}

	if err := os.MkdirAll(footprintOut, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, obj := range objects {
		path := filepath.Join(footprintOut, obj.FootprintName()+".kicad_mod")
		logger.Debug("serializing footprint", "name", obj.FootprintName(), "library", obj.LibraryName())
		content := footprint.Serialize(obj)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote footprint", "path", path, "pads", obj.TerminalCount())
	}
	return nil
}

func loadChipSpec(path string) (*components.Chip, error) {
	var spec components.ChipSpec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("parsing chip spec %s: %w", path, err)
	}
	chip, err := components.NewChip(spec)
	if err != nil {
		return nil, fmt.Errorf("building chip from %s: %w", path, err)
	}
	return chip, nil
}
