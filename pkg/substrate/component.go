package substrate

// DefaultCourtyardMargin is the courtyard clearance in mm applied when
// a component does not override it.
const DefaultCourtyardMargin = 0.25

// BoardComposableObject is the capability interface for any object
// that can be placed on a board: a resistor, an FPGA, a mounting hole.
// It is the substrate under every concrete component type.
//
// All methods are read-only. Implementers must return the same values
// on repeated calls within one serialization pass; the serializer is
// free to call any accessor more than once. The ordered slices
// (PadDescriptors, FpTextElements, GraphicElements) define emission
// order, not just storage order.
type BoardComposableObject interface {
	// Classification
	IsSMT() bool
	IsElectrical() bool
	IsPassive() bool
	TerminalCount() int

	// Identification
	FunctionalType() FunctionalType
	FootprintName() string
	LibraryName() string

	// Geometry, in component-local mm coordinates.
	BoundingBox() Rectangle

	// Footprint content
	PadDescriptors() []PadDescriptor
	FpTextElements() []FpText
	GraphicElements() []GraphicElement
	Description() (string, bool)
	Tags() (string, bool)
	Model3D() (Model3D, bool)

	// CourtyardMargin is the clearance in mm added around the bounding
	// box. Assumed non-negative; a negative value silently yields a
	// shrunken or inverted courtyard.
	CourtyardMargin() float64
}

// ComponentDefaults supplies the defaulted interface methods. Embed it
// in a concrete component and override only what differs.
type ComponentDefaults struct{}

// IsPassive reports false unless the component overrides it.
func (ComponentDefaults) IsPassive() bool { return false }

// CourtyardMargin returns the standard clearance.
func (ComponentDefaults) CourtyardMargin() float64 { return DefaultCourtyardMargin }

// Description returns no description.
func (ComponentDefaults) Description() (string, bool) { return "", false }

// Tags returns no tags.
func (ComponentDefaults) Tags() (string, bool) { return "", false }

// Model3D returns no 3-D model reference.
func (ComponentDefaults) Model3D() (Model3D, bool) { return Model3D{}, false }

// GraphicElements returns no extra graphics.
func (ComponentDefaults) GraphicElements() []GraphicElement { return nil }

// GenerateCourtyard derives the component's courtyard from its
// bounding box and margin. It is recomputed on every call; courtyards
// are never cached.
func GenerateCourtyard(obj BoardComposableObject) Courtyard {
	return NewCourtyard(obj.BoundingBox(), obj.CourtyardMargin())
}
