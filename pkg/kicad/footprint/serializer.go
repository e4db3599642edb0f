// Package footprint serializes a substrate.BoardComposableObject to
// the KiCad .kicad_mod footprint format.
//
// The emitted grammar is an external compatibility boundary: section
// order, field order, quoting, and whitespace are consumed verbatim by
// the downstream layout tool. Identical descriptor state produces
// byte-identical output on every call, so emitted footprints are
// reproducible and diffable.
package footprint

import (
	"github.com/OpenTraceLab/CopperForge/pkg/kicad/sexp"
	"github.com/OpenTraceLab/CopperForge/pkg/substrate"
)

// Fixed header tokens of the emitted format.
const (
	FormatVersion    = 20250401
	Generator        = "copperforge"
	GeneratorVersion = "1.0"

	// defaultLayer is the board layer recorded in the footprint header.
	defaultLayer = "F.Cu"
)

// Serialize renders the component as one self-contained .kicad_mod
// document. Writing the returned text to disk is the caller's job.
//
// The traversal is pure and side-effect free; independent descriptors
// may be serialized concurrently.
func Serialize(obj substrate.BoardComposableObject) string {
	return sexp.Render(BuildDocument(obj))
}

// BuildDocument walks the descriptor and assembles the document tree
// in the fixed section order: header, descr, tags, attributes, text
// elements, graphics (descriptor-declared first, then the derived
// courtyard), pads, optional 3-D model, trailing flags. Tests can
// inspect the tree without committing to whitespace.
func BuildDocument(obj substrate.BoardComposableObject) *sexp.List {
	doc := sexp.NewList("footprint", sexp.Str(obj.FootprintName()))
	doc.Append(
		sexp.NewList("version", sexp.Int(FormatVersion)),
		sexp.NewList("generator", sexp.Str(Generator)),
		sexp.NewList("generator_version", sexp.Str(GeneratorVersion)),
		sexp.NewList("layer", sexp.Str(defaultLayer)),
	)

	if desc, ok := obj.Description(); ok {
		doc.Append(sexp.NewList("descr", sexp.Str(desc)))
	}
	if tags, ok := obj.Tags(); ok {
		doc.Append(sexp.NewList("tags", sexp.Str(tags)))
	}

	pads := obj.PadDescriptors()
	if hasSMDPad(pads) {
		doc.Append(sexp.NewList("attr", sexp.Atom("smd")))
	}
	doc.Append(sexp.NewList("duplicate_pad_numbers_are_jumpers", sexp.Atom("no")))

	for _, text := range obj.FpTextElements() {
		doc.Append(fpTextNode(text))
	}

	// Descriptor-declared graphics first, then the derived courtyard
	// trace, in that concatenation order. Copied into a fresh slice so
	// the descriptor's own slice is never appended to.
	declared := obj.GraphicElements()
	courtyard := substrate.GenerateCourtyard(obj).GraphicElements()
	graphics := make([]substrate.GraphicElement, 0, len(declared)+len(courtyard))
	graphics = append(graphics, declared...)
	graphics = append(graphics, courtyard...)
	for _, element := range graphics {
		if node := graphicNode(element); node != nil {
			doc.Append(node)
		}
	}

	for _, pad := range pads {
		doc.Append(padNode(pad))
	}

	if model, ok := obj.Model3D(); ok {
		doc.Append(modelNode(model))
	}

	doc.Append(sexp.NewList("embedded_fonts", sexp.Atom("no")))
	return doc
}

func hasSMDPad(pads []substrate.PadDescriptor) bool {
	for _, pad := range pads {
		if pad.Type == substrate.PadSMD {
			return true
		}
	}
	return false
}

func fpTextNode(text substrate.FpText) *sexp.List {
	at := sexp.NewList("at", sexp.Float(text.Position.X), sexp.Float(text.Position.Y))
	if text.Rotation != nil {
		at.Items = append(at.Items, sexp.Float(*text.Rotation))
	}

	node := sexp.NewList("fp_text",
		sexp.Atom(text.Type.KiCadKeyword()),
		sexp.Str(text.Text),
		at,
		sexp.NewList("layer", sexp.Str(text.Layer)),
	)
	node.Append(
		sexp.NewList("effects",
			sexp.NewList("font",
				sexp.NewList("size", sexp.Float(text.Font.Size.Width), sexp.Float(text.Font.Size.Height)),
				sexp.NewList("thickness", sexp.Float(text.Font.Thickness)),
			),
		),
		sexp.NewList("tstamp", sexp.Str(text.UUID)),
	)
	return node
}

// graphicNode renders a Line element and returns nil for Rectangle and
// Circle variants, which the downstream tool has no rendering rule for
// yet. The skip is silent, not an error.
func graphicNode(element substrate.GraphicElement) *sexp.List {
	if element.Kind != substrate.GraphicLine {
		return nil
	}

	node := sexp.NewList("fp_line")
	node.Append(
		sexp.NewList("start", sexp.Float(element.Start.X), sexp.Float(element.Start.Y)),
		sexp.NewList("end", sexp.Float(element.End.X), sexp.Float(element.End.Y)),
		sexp.NewList("stroke").Append(
			sexp.NewList("width", sexp.Float(element.Stroke.Width)),
			sexp.NewList("type", sexp.Atom(element.Stroke.Type.KiCadKeyword())),
		),
		sexp.NewList("layer", sexp.Str(element.Layer.KiCadString())),
		sexp.NewList("tstamp", sexp.Str(element.UUID)),
	)
	return node
}

func padNode(pad substrate.PadDescriptor) *sexp.List {
	node := sexp.NewList("pad",
		sexp.Str(pad.Number),
		sexp.Atom(pad.Type.KiCadKeyword()),
		sexp.Atom(pad.Shape.KiCadKeyword()),
	)

	layers := sexp.NewList("layers")
	for _, layer := range pad.Layers {
		layers.Items = append(layers.Items, sexp.Str(layer))
	}

	node.Append(
		sexp.NewList("at", sexp.Float(pad.Position.X), sexp.Float(pad.Position.Y)),
		sexp.NewList("size", sexp.Float(pad.Size.Width), sexp.Float(pad.Size.Height)),
		layers,
	)
	if pad.RoundRectRatio != nil {
		node.Append(sexp.NewList("roundrect_rratio", sexp.Float(*pad.RoundRectRatio)))
	}
	node.Append(sexp.NewList("tstamp", sexp.Str(pad.UUID)))
	return node
}

func modelNode(model substrate.Model3D) *sexp.List {
	node := sexp.NewList("model", sexp.Str(model.Path))
	node.Append(
		vectorNode("offset", model.Offset),
		vectorNode("scale", model.Scale),
		vectorNode("rotate", model.Rotation),
	)
	return node
}

func vectorNode(tag string, v [3]float64) *sexp.List {
	return sexp.NewList(tag).Append(
		sexp.NewList("xyz", sexp.Float(v[0]), sexp.Float(v[1]), sexp.Float(v[2])),
	)
}
