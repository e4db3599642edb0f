// Package stackup describes the layered physical composition of a
// board: which layers exist, their order bottom to top, thickness, and
// material classification.
//
// This is shared vocabulary only. The interactive stackup viewer
// consumes these values for its own mesh generation; nothing here
// renders anything, and nothing here feeds the footprint serializer.
package stackup

// Kind classifies a stackup layer's material.
type Kind int

const (
	Copper Kind = iota
	Prepreg
	Core
	SolderMask
	Silkscreen
)

func (k Kind) String() string {
	switch k {
	case Copper:
		return "copper"
	case Prepreg:
		return "prepreg"
	case Core:
		return "core"
	case SolderMask:
		return "solder mask"
	case Silkscreen:
		return "silkscreen"
	}
	return "unknown"
}

// Conductive reports whether the layer material carries signals.
func (k Kind) Conductive() bool {
	return k == Copper
}

// Default layer thicknesses in mm for the standard preset.
const (
	copperThickness     = 0.3
	prepregThickness    = 0.5
	coreThickness       = 1.0
	solderMaskThickness = copperThickness * 0.5
)

// Layer is one physical layer of the stackup.
type Layer struct {
	Kind      Kind
	Name      string
	Thickness float64
}

// Stackup is an ordered set of layers, bottom to top, over a
// rectangular board outline.
type Stackup struct {
	Width  float64 // board width in mm
	Height float64 // board height in mm
	Layers []Layer // bottom to top
}

// StandardFourLayer returns the common 4-layer stackup: solder mask,
// signal copper, prepreg, two plane layers around an FR4 core, prepreg,
// signal copper, solder mask, bottom to top.
func StandardFourLayer(width, height float64) Stackup {
	return Stackup{
		Width:  width,
		Height: height,
		Layers: []Layer{
			{Kind: SolderMask, Name: "B.Mask", Thickness: solderMaskThickness},
			{Kind: Copper, Name: "B.Cu", Thickness: copperThickness},
			{Kind: Prepreg, Name: "Prepreg 1", Thickness: prepregThickness},
			{Kind: Copper, Name: "In2.Cu", Thickness: copperThickness},
			{Kind: Core, Name: "Core", Thickness: coreThickness},
			{Kind: Copper, Name: "In1.Cu", Thickness: copperThickness},
			{Kind: Prepreg, Name: "Prepreg 2", Thickness: prepregThickness},
			{Kind: Copper, Name: "F.Cu", Thickness: copperThickness},
			{Kind: SolderMask, Name: "F.Mask", Thickness: solderMaskThickness},
		},
	}
}

// TotalThickness sums all layer thicknesses.
func (s Stackup) TotalThickness() float64 {
	total := 0.0
	for _, layer := range s.Layers {
		total += layer.Thickness
	}
	return total
}

// CopperCount returns the number of conductive layers.
func (s Stackup) CopperCount() int {
	count := 0
	for _, layer := range s.Layers {
		if layer.Kind.Conductive() {
			count++
		}
	}
	return count
}

// ZExtents returns the bottom and top Z coordinate of each layer when
// the stackup is centered on Z = 0, in the same order as Layers.
func (s Stackup) ZExtents() [][2]float64 {
	extents := make([][2]float64, 0, len(s.Layers))
	z := -s.TotalThickness() / 2.0
	for _, layer := range s.Layers {
		extents = append(extents, [2]float64{z, z + layer.Thickness})
		z += layer.Thickness
	}
	return extents
}
