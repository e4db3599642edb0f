package substrate

import (
	"strconv"

	"github.com/google/uuid"
)

// courtyardStrokeWidth is the line width in mm of the courtyard trace.
const courtyardStrokeWidth = 0.05

// courtyardNamespace seeds the derived identity tokens of courtyard
// edges. Courtyard graphics are rebuilt on every serialization, so
// their tokens are content-derived rather than random; two builds of
// the same courtyard carry the same tokens and serialized output stays
// byte-identical.
var courtyardNamespace = uuid.MustParse("8c9b6e42-1f35-4a6d-9b0a-5d2e7c4f81a3")

// Courtyard is the margin-expanded placement boundary of a component,
// fixed to the courtyard layer.
type Courtyard struct {
	Bounds Rectangle
	Margin float64
	Layer  Layer
}

// NewCourtyard expands bounds by margin on all sides. A negative
// margin passes through and produces a shrunken or inverted courtyard;
// no correction is applied.
func NewCourtyard(bounds Rectangle, margin float64) Courtyard {
	return Courtyard{
		Bounds: bounds.Expand(margin),
		Margin: margin,
		Layer:  LayerCourtyard,
	}
}

// GraphicElements traces the courtyard perimeter as exactly four line
// segments, always in the same order: top edge left to right, right
// edge top to bottom, bottom edge right to left, left edge bottom to
// top. Degenerate rectangles still produce four (zero-length) lines.
func (c Courtyard) GraphicElements() []GraphicElement {
	corners := [4]Position{
		{X: c.Bounds.MinX, Y: c.Bounds.MinY},
		{X: c.Bounds.MaxX, Y: c.Bounds.MinY},
		{X: c.Bounds.MaxX, Y: c.Bounds.MaxY},
		{X: c.Bounds.MinX, Y: c.Bounds.MaxY},
	}

	stroke := Stroke{Width: courtyardStrokeWidth, Type: StrokeSolid}
	elements := make([]GraphicElement, 0, 4)
	for i := 0; i < 4; i++ {
		start := corners[i]
		end := corners[(i+1)%4]
		elements = append(elements, NewLine(start, end, c.Layer, stroke, c.edgeToken(i, start, end)))
	}
	return elements
}

// edgeToken derives a stable identity token for one perimeter edge
// from its geometry and position in the trace order.
func (c Courtyard) edgeToken(index int, start, end Position) string {
	name := strconv.Itoa(index) + "|" +
		formatCoord(start.X) + "," + formatCoord(start.Y) + "|" +
		formatCoord(end.X) + "," + formatCoord(end.Y)
	return uuid.NewSHA1(courtyardNamespace, []byte(name)).String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
