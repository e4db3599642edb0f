package substrate

// Layer identifies a front-side board layer a footprint element can
// live on. The KiCad names are a fixed external contract shared with
// any tool that consumes the emitted footprints.
type Layer int

const (
	LayerSilkScreen  Layer = iota // F.SilkS - visible markings
	LayerCourtyard                // F.CrtYd - component boundary
	LayerFabrication              // F.Fab - manufacturing reference
	LayerCopper                   // F.Cu - electrical layer
	LayerMask                     // F.Mask - solder mask
	LayerPaste                    // F.Paste - solder paste
)

// KiCadString returns the layer name used in footprint files.
func (l Layer) KiCadString() string {
	switch l {
	case LayerSilkScreen:
		return "F.SilkS"
	case LayerCourtyard:
		return "F.CrtYd"
	case LayerFabrication:
		return "F.Fab"
	case LayerCopper:
		return "F.Cu"
	case LayerMask:
		return "F.Mask"
	case LayerPaste:
		return "F.Paste"
	}
	return "F.Cu"
}
