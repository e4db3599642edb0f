// Package substrate defines the polymorphic description of a placeable
// PCB component: geometry value objects, the closed taxonomy enums with
// their fixed KiCad keyword mappings, the BoardComposableObject
// capability interface, and courtyard derivation.
//
// Everything in this package is plain data in component-local
// millimeter coordinates. Nothing here touches the file system and no
// value is mutated after construction; serialization to the KiCad
// footprint format lives in pkg/kicad/footprint.
package substrate

// Position is a 2D coordinate in mm, component-local.
type Position struct {
	X float64
	Y float64
}

// Size holds width/height dimensions in mm.
type Size struct {
	Width  float64
	Height float64
}

// Rectangle is an axis-aligned bounding rectangle in mm.
//
// Construction does not enforce Min <= Max; a caller that builds an
// inverted rectangle gets it back unchanged from every operation here.
type Rectangle struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns MaxX - MinX (negative for an inverted rectangle).
func (r Rectangle) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns MaxY - MinY (negative for an inverted rectangle).
func (r Rectangle) Height() float64 {
	return r.MaxY - r.MinY
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Position {
	return Position{
		X: (r.MinX + r.MaxX) / 2.0,
		Y: (r.MinY + r.MaxY) / 2.0,
	}
}

// Expand returns a copy grown by margin on all four sides. A negative
// margin shrinks the rectangle and may invert it; that is the caller's
// problem, not checked here.
func (r Rectangle) Expand(margin float64) Rectangle {
	return Rectangle{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Stroke defines line appearance for graphic elements.
type Stroke struct {
	Width float64
	Type  StrokeType
}

// Font holds the stroke-font parameters used by footprint text.
type Font struct {
	Size      Size
	Thickness float64
}

// TentingSettings describe solder mask tenting on each board side.
// Carried as pad metadata; the footprint serializer does not emit it.
type TentingSettings struct {
	Front Tenting
	Back  Tenting
}

// PadDescriptor describes one copper pad of a footprint.
//
// Number is conventionally unique per footprint but not required to
// be. DrillSize is meaningful only for through-hole and NPTH pads, and
// RoundRectRatio only for roundrect pads; both stay nil otherwise.
// UUID is a process-unique token assigned when the descriptor is
// built, stable for the life of the instance but never reused across
// runs.
type PadDescriptor struct {
	Number         string
	Type           PadType
	Shape          PadShape
	Position       Position
	Size           Size
	DrillSize      *float64
	Layers         []string
	RoundRectRatio *float64
	Tenting        TentingSettings
	UUID           string
}

// FpText is a text element of a footprint (reference, value, or free
// user text). Rotation is nil when the text is unrotated.
type FpText struct {
	Type     TextType
	Text     string
	Position Position
	Rotation *float64
	Layer    string
	UUID     string
	Font     Font
}

// GraphicKind discriminates the GraphicElement variants.
type GraphicKind int

const (
	GraphicLine GraphicKind = iota
	GraphicRectangle
	GraphicCircle
)

// GraphicElement is one drawing primitive of a footprint. Exactly one
// of the variant field groups is meaningful, selected by Kind:
// Start/End for a line, Bounds for a rectangle, Center/Radius for a
// circle.
type GraphicElement struct {
	Kind   GraphicKind
	Start  Position
	End    Position
	Bounds Rectangle
	Center Position
	Radius float64
	Layer  Layer
	Stroke Stroke
	UUID   string
}

// NewLine builds a Line graphic element on the given layer.
func NewLine(start, end Position, layer Layer, stroke Stroke, uuid string) GraphicElement {
	return GraphicElement{
		Kind:   GraphicLine,
		Start:  start,
		End:    end,
		Layer:  layer,
		Stroke: stroke,
		UUID:   uuid,
	}
}

// Model3D references an external 3-D model for the component.
type Model3D struct {
	Path     string
	Offset   [3]float64
	Scale    [3]float64
	Rotation [3]float64
}
