package components

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/CopperForge/pkg/substrate"
)

// NewResistor0805 builds the footprint descriptor for a 0805
// (2012 metric) chip resistor with the given value, e.g. "10k".
func NewResistor0805(value string) *Chip {
	chip, err := NewChip(ChipSpec{
		Name:           "R_0805_2012Metric",
		Library:        "Resistor_SMD",
		Functional:     "resistor",
		Value:          value,
		Description:    "Resistor SMD 0805 (2012 Metric), square (rectangular) end terminal",
		Tags:           "resistor 0805",
		BodyWidth:      2.0,
		BodyHeight:     1.25,
		PadWidth:       1.0,
		PadHeight:      1.45,
		PadSpan:        1.9,
		RoundRectRatio: 0.25,
		PadLayers:      []string{"F.Cu", "F.Mask", "F.Paste"},
		ModelPath:      "${KICAD9_3DMODEL_DIR}/Resistor_SMD.3dshapes/R_0805_2012Metric.wrl",
	})
	if err != nil {
		// Preset specs are fixed and valid; this cannot happen.
		panic(err)
	}
	return chip
}

// NewCapacitor0402 builds the footprint descriptor for a 0402
// (1005 metric) chip capacitor with the given value, e.g. "100nF".
// The 0402 courtyard uses the larger 0.41 clearance and the footprint
// carries silkscreen polarity-free markings plus a fab-layer body
// outline.
func NewCapacitor0402(value string) *Chip {
	chip, err := NewChip(ChipSpec{
		Name:            "C_0402_1005Metric",
		Library:         "Capacitor_SMD",
		Functional:      "capacitor",
		Value:           value,
		Description:     "Capacitor SMD 0402 (1005 Metric), square (rectangular) end terminal, IPC_7351 nominal",
		Tags:            "capacitor",
		BodyWidth:       1.0,
		BodyHeight:      0.5,
		PadWidth:        0.56,
		PadHeight:       0.62,
		PadSpan:         0.96,
		RoundRectRatio:  0.25,
		PadLayers:       []string{"F.Cu", "F.Paste", "F.Mask"},
		CourtyardMargin: 0.41,
		ModelPath:       "${KICAD6_3DMODEL_DIR}/Capacitor_SMD.3dshapes/C_0402_1005Metric.wrl",
	})
	if err != nil {
		panic(err)
	}

	silk := substrate.Stroke{Width: 0.12, Type: substrate.StrokeSolid}
	fab := substrate.Stroke{Width: 0.1, Type: substrate.StrokeSolid}
	chip.graphics = []substrate.GraphicElement{
		substrate.NewLine(
			substrate.Position{X: -0.107836, Y: -0.36},
			substrate.Position{X: 0.107836, Y: -0.36},
			substrate.LayerSilkScreen, silk, uuid.NewString()),
		substrate.NewLine(
			substrate.Position{X: -0.107836, Y: 0.36},
			substrate.Position{X: 0.107836, Y: 0.36},
			substrate.LayerSilkScreen, silk, uuid.NewString()),
		substrate.NewLine(
			substrate.Position{X: -0.5, Y: -0.25},
			substrate.Position{X: 0.5, Y: -0.25},
			substrate.LayerFabrication, fab, uuid.NewString()),
		substrate.NewLine(
			substrate.Position{X: -0.5, Y: 0.25},
			substrate.Position{X: -0.5, Y: -0.25},
			substrate.LayerFabrication, fab, uuid.NewString()),
		substrate.NewLine(
			substrate.Position{X: 0.5, Y: -0.25},
			substrate.Position{X: 0.5, Y: 0.25},
			substrate.LayerFabrication, fab, uuid.NewString()),
		substrate.NewLine(
			substrate.Position{X: 0.5, Y: 0.25},
			substrate.Position{X: -0.5, Y: 0.25},
			substrate.LayerFabrication, fab, uuid.NewString()),
	}
	return chip
}
