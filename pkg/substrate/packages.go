package substrate

// PackageKind enumerates the physical package families a component can
// come in.
type PackageKind int

const (
	PackageSMT PackageKind = iota
	PackageThroughHole
	PackageBGA
	PackageQFP
)

func (k PackageKind) String() string {
	switch k {
	case PackageSMT:
		return "smt"
	case PackageThroughHole:
		return "through-hole"
	case PackageBGA:
		return "bga"
	case PackageQFP:
		return "qfp"
	}
	return "smt"
}

// Package describes a component's physical mounting form. Kind selects
// which parameter group applies: Size/Pitch for SMT chips, Spacing and
// DrillSize for through-hole parts, Pitch and ArrayCols/ArrayRows for
// BGAs, Pitch and PinCount for QFPs. Part carries a free-form package
// identifier like "0805" or "LQFP-100".
type Package struct {
	Kind      PackageKind
	Part      string
	Size      Size
	Pitch     *float64
	Spacing   float64
	DrillSize float64
	ArrayCols int
	ArrayRows int
	PinCount  int
}
