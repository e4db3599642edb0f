package substrate

// FunctionalKind enumerates the electrical roles a component can play
// in a design, from passives through programmable logic.
type FunctionalKind int

const (
	FunctionalResistor FunctionalKind = iota
	FunctionalCapacitor
	FunctionalInductor
	FunctionalConnector
	FunctionalFuse
	FunctionalProtection
	FunctionalIntegratedCircuit
	FunctionalADC
	FunctionalDAC
	FunctionalFPGA
	FunctionalMCU
	FunctionalLED
	FunctionalLCD
	FunctionalIsolationIC
	FunctionalOpAmp
	FunctionalTimer
)

var functionalKindNames = map[FunctionalKind]string{
	FunctionalResistor:          "resistor",
	FunctionalCapacitor:         "capacitor",
	FunctionalInductor:          "inductor",
	FunctionalConnector:         "connector",
	FunctionalFuse:              "fuse",
	FunctionalProtection:        "protection",
	FunctionalIntegratedCircuit: "ic",
	FunctionalADC:               "adc",
	FunctionalDAC:               "dac",
	FunctionalFPGA:              "fpga",
	FunctionalMCU:               "mcu",
	FunctionalLED:               "led",
	FunctionalLCD:               "lcd",
	FunctionalIsolationIC:       "isolation-ic",
	FunctionalOpAmp:             "opamp",
	FunctionalTimer:             "timer",
}

func (k FunctionalKind) String() string {
	if name, ok := functionalKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseFunctionalKind maps a role name like "resistor" or "fpga" back
// to its kind. The second result is false for unknown names.
func ParseFunctionalKind(name string) (FunctionalKind, bool) {
	for kind, n := range functionalKindNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// FunctionalType pairs a functional role with a free-form part
// identifier, e.g. Resistor("10k") or FPGA("Artix7").
type FunctionalType struct {
	Kind FunctionalKind
	Part string
}

func (f FunctionalType) String() string {
	if f.Part == "" {
		return f.Kind.String()
	}
	return f.Kind.String() + "(" + f.Part + ")"
}
