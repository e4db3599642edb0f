package substrate

// PadType classifies how a pad attaches to the board.
type PadType int

const (
	PadSMD PadType = iota
	PadThroughHole
	PadNPTH
)

// KiCadKeyword returns the pad type token used in footprint files.
func (t PadType) KiCadKeyword() string {
	switch t {
	case PadSMD:
		return "smd"
	case PadThroughHole:
		return "thru_hole"
	case PadNPTH:
		return "np_thru_hole"
	}
	return "smd"
}

// PadShape is the copper outline of a pad.
type PadShape int

const (
	ShapeCircle PadShape = iota
	ShapeRect
	ShapeOval
	ShapeRoundRect
)

// KiCadKeyword returns the pad shape token used in footprint files.
func (s PadShape) KiCadKeyword() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	case ShapeOval:
		return "oval"
	case ShapeRoundRect:
		return "roundrect"
	}
	return "circle"
}

// TextType classifies footprint text elements.
type TextType int

const (
	TextReference TextType = iota
	TextValue
	TextUser
)

// KiCadKeyword returns the fp_text type token.
func (t TextType) KiCadKeyword() string {
	switch t {
	case TextReference:
		return "reference"
	case TextValue:
		return "value"
	case TextUser:
		return "user"
	}
	return "user"
}

// StrokeType is the line style of a graphic stroke.
type StrokeType int

const (
	StrokeSolid StrokeType = iota
	StrokeDashed
	StrokeDotted
)

// KiCadKeyword returns the stroke type token.
func (s StrokeType) KiCadKeyword() string {
	switch s {
	case StrokeSolid:
		return "solid"
	case StrokeDashed:
		return "dash"
	case StrokeDotted:
		return "dot"
	}
	return "solid"
}

// Tenting describes solder mask coverage over a plated hole.
type Tenting int

const (
	TentingNone Tenting = iota
	TentingFull
	TentingPartial
)

func (t Tenting) String() string {
	switch t {
	case TentingNone:
		return "none"
	case TentingFull:
		return "full"
	case TentingPartial:
		return "partial"
	}
	return "none"
}
