// Package units defines tagged scalar types for the costing pipeline.
// The tags exist for interface clarity only; all arithmetic happens on the
// underlying float64 values.
package units

// Power quantities.
type (
	// Megawatts is thermal or electric power in MW.
	Megawatts float64
	// Megajoules is energy per shot (IFE target yield).
	Megajoules float64
)

// Geometry quantities.
type (
	// Meters is a length or radius in m.
	Meters float64
	// CubicMeters is a component volume in m^3.
	CubicMeters float64
)

// Material quantities.
type (
	// KgPerCubicMeter is a mass density.
	KgPerCubicMeter float64
	// DollarsPerKg is a raw material cost.
	DollarsPerKg float64
	// Kelvin is an operating temperature.
	Kelvin float64
)

// Monetary quantities. All capital accounts are reported in millions of USD.
type (
	// MillionDollars is a capital or annual cost in M$.
	MillionDollars float64
	// DollarsPerKW is a power-scaling cost benchmark.
	DollarsPerKW float64
)

// Conversion constants.
const (
	// SecondsPerYear converts an average power to annual energy.
	SecondsPerYear = 3.1536e7

	// JoulesPerMegajoule and WattsPerMegawatt keep unit algebra explicit in
	// the fuel-burn and IFE yield formulas.
	JoulesPerMegajoule = 1e6
	WattsPerMegawatt   = 1e6
)
