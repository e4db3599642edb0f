// Package components provides ready-made BoardComposableObject
// implementations for common parts: a parametric two-terminal SMT chip
// plus resistor and capacitor presets built on it.
package components

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/CopperForge/pkg/substrate"
)

// ChipSpec parametrizes a two-terminal SMT chip footprint. All
// dimensions are mm. The toml tags let a chip be described in a config
// file and handed to NewChip unchanged.
type ChipSpec struct {
	Name        string `toml:"name"`
	Library     string `toml:"library"`
	Functional  string `toml:"functional"` // role name, e.g. "resistor"
	Value       string `toml:"value"`      // part value, e.g. "10k"
	Description string `toml:"description"`
	Tags        string `toml:"tags"`

	BodyWidth  float64 `toml:"body_width"`
	BodyHeight float64 `toml:"body_height"`

	PadWidth  float64 `toml:"pad_width"`
	PadHeight float64 `toml:"pad_height"`
	// PadSpan is the center-to-center distance between the two pads.
	PadSpan float64 `toml:"pad_span"`
	// RoundRectRatio selects roundrect pads when positive; zero means
	// plain rectangular pads.
	RoundRectRatio float64 `toml:"roundrect_ratio"`
	// PadLayers defaults to F.Cu, F.Mask, F.Paste when empty.
	PadLayers []string `toml:"pad_layers"`

	// CourtyardMargin overrides the default clearance when positive.
	CourtyardMargin float64 `toml:"courtyard_margin"`

	ModelPath string `toml:"model_path"`
}

// refTextOffset is the vertical distance of the reference and value
// texts from the footprint origin.
const refTextOffset = 1.16

// Chip is a two-terminal SMT component. All content is generated at
// construction and immutable afterwards, so repeated serialization of
// one instance yields identical bytes.
type Chip struct {
	functional  substrate.FunctionalType
	name        string
	library     string
	description string
	tags        string
	passive     bool
	body        substrate.Rectangle
	margin      float64
	pads        []substrate.PadDescriptor
	texts       []substrate.FpText
	graphics    []substrate.GraphicElement
	model       *substrate.Model3D
}

// NewChip builds a chip from its spec. The only rejected input is an
// unknown functional role name; geometry is taken as given, valid or
// not.
func NewChip(spec ChipSpec) (*Chip, error) {
	kind, ok := substrate.ParseFunctionalKind(spec.Functional)
	if !ok {
		return nil, fmt.Errorf("unknown functional role %q", spec.Functional)
	}

	layers := spec.PadLayers
	if len(layers) == 0 {
		layers = []string{"F.Cu", "F.Mask", "F.Paste"}
	}

	margin := spec.CourtyardMargin
	if margin == 0 {
		margin = substrate.DefaultCourtyardMargin
	}

	chip := &Chip{
		functional:  substrate.FunctionalType{Kind: kind, Part: spec.Value},
		name:        spec.Name,
		library:     spec.Library,
		description: spec.Description,
		tags:        spec.Tags,
		passive:     isPassiveKind(kind),
		body: substrate.Rectangle{
			MinX: -spec.BodyWidth / 2,
			MinY: -spec.BodyHeight / 2,
			MaxX: spec.BodyWidth / 2,
			MaxY: spec.BodyHeight / 2,
		},
		margin: margin,
	}

	padSize := substrate.Size{Width: spec.PadWidth, Height: spec.PadHeight}
	for i, x := range [2]float64{-spec.PadSpan / 2, spec.PadSpan / 2} {
		chip.pads = append(chip.pads, newSMDPad(fmt.Sprintf("%d", i+1), x, padSize, layers, spec.RoundRectRatio))
	}

	chip.texts = standardTexts(spec.Name)

	if spec.ModelPath != "" {
		chip.model = &substrate.Model3D{
			Path:  spec.ModelPath,
			Scale: [3]float64{1, 1, 1},
		}
	}
	return chip, nil
}

func isPassiveKind(kind substrate.FunctionalKind) bool {
	switch kind {
	case substrate.FunctionalResistor, substrate.FunctionalCapacitor, substrate.FunctionalInductor:
		return true
	}
	return false
}

// newSMDPad builds one surface-mount pad centered at (x, 0). A
// positive roundrect ratio selects the roundrect shape.
func newSMDPad(number string, x float64, size substrate.Size, layers []string, ratio float64) substrate.PadDescriptor {
	pad := substrate.PadDescriptor{
		Number:   number,
		Type:     substrate.PadSMD,
		Shape:    substrate.ShapeRect,
		Position: substrate.Position{X: x},
		Size:     size,
		Layers:   append([]string(nil), layers...),
		UUID:     uuid.NewString(),
	}
	if ratio > 0 {
		r := ratio
		pad.Shape = substrate.ShapeRoundRect
		pad.RoundRectRatio = &r
	}
	return pad
}

// standardTexts returns the usual three text elements: silkscreen
// reference, fab-layer value, and the fab-layer ${REFERENCE} marker.
func standardTexts(name string) []substrate.FpText {
	return []substrate.FpText{
		{
			Type:     substrate.TextReference,
			Text:     "REF**",
			Position: substrate.Position{X: 0, Y: -refTextOffset},
			Layer:    "F.SilkS",
			UUID:     uuid.NewString(),
			Font:     substrate.Font{Size: substrate.Size{Width: 1, Height: 1}, Thickness: 0.15},
		},
		{
			Type:     substrate.TextValue,
			Text:     name,
			Position: substrate.Position{X: 0, Y: refTextOffset},
			Layer:    "F.Fab",
			UUID:     uuid.NewString(),
			Font:     substrate.Font{Size: substrate.Size{Width: 1, Height: 1}, Thickness: 0.15},
		},
		{
			Type:     substrate.TextUser,
			Text:     "${REFERENCE}",
			Position: substrate.Position{},
			Layer:    "F.Fab",
			UUID:     uuid.NewString(),
			Font:     substrate.Font{Size: substrate.Size{Width: 0.25, Height: 0.25}, Thickness: 0.04},
		},
	}
}

// BoardComposableObject implementation.

func (c *Chip) IsSMT() bool                                 { return true }
func (c *Chip) IsElectrical() bool                          { return true }
func (c *Chip) IsPassive() bool                             { return c.passive }
func (c *Chip) TerminalCount() int                          { return len(c.pads) }
func (c *Chip) FunctionalType() substrate.FunctionalType    { return c.functional }
func (c *Chip) FootprintName() string                       { return c.name }
func (c *Chip) LibraryName() string                         { return c.library }
func (c *Chip) BoundingBox() substrate.Rectangle            { return c.body }
func (c *Chip) PadDescriptors() []substrate.PadDescriptor   { return c.pads }
func (c *Chip) FpTextElements() []substrate.FpText          { return c.texts }
func (c *Chip) GraphicElements() []substrate.GraphicElement { return c.graphics }
func (c *Chip) CourtyardMargin() float64                    { return c.margin }

func (c *Chip) Description() (string, bool) {
	return c.description, c.description != ""
}

func (c *Chip) Tags() (string, bool) {
	return c.tags, c.tags != ""
}

func (c *Chip) Model3D() (substrate.Model3D, bool) {
	if c.model == nil {
		return substrate.Model3D{}, false
	}
	return *c.model, true
}

// Package returns the physical package family: a two-terminal SMT
// chip, described by its body size and pad pitch.
func (c *Chip) Package() substrate.Package {
	pitch := c.pads[1].Position.X - c.pads[0].Position.X
	return substrate.Package{
		Kind:  substrate.PackageSMT,
		Part:  c.name,
		Size:  substrate.Size{Width: c.body.Width(), Height: c.body.Height()},
		Pitch: &pitch,
	}
}
