// Package materials provides the fixed catalogue of structural and
// functional materials used by the volume-costed CAS accounts, plus an
// alias-normalization lookup so callers may use human names or codes.
package materials

import (
	"fmt"
	"sort"
	"strings"

	"fusioncost/pkg/core/units"
)

// Material is an immutable catalogue record. Exactly one canonical Material
// exists per code; human-readable aliases normalize to the same code.
type Material struct {
	Name    string                // human-readable label ("Tungsten")
	Code    string                // canonical code ("W")
	Density units.KgPerCubicMeter // kg/m^3
	RawCost units.DollarsPerKg    // $/kg before manufacturing
	MfgMult float64               // manufacturing multiplier (dimensionless)
	MaxTemp units.Kelvin          // max operating temperature
}

// UnitCost returns the manufactured cost in $/kg.
func (m Material) UnitCost() units.DollarsPerKg {
	return units.DollarsPerKg(float64(m.RawCost) * m.MfgMult)
}

// CostForVolume returns the manufactured cost of a component volume, in M$.
func (m Material) CostForVolume(vol units.CubicMeters) units.MillionDollars {
	mass := float64(vol) * float64(m.Density)
	return units.MillionDollars(mass * float64(m.UnitCost()) / 1e6)
}

// CostForMass returns the manufactured cost of a mass in kg, in M$.
func (m Material) CostForMass(kg float64) units.MillionDollars {
	return units.MillionDollars(kg * float64(m.UnitCost()) / 1e6)
}

// Lookup resolves a material by canonical code or any registered alias,
// case-insensitively. An unknown name is a fatal configuration error: every
// downstream material-costed account would be silently wrong, so the error
// lists the known codes and aliases.
func Lookup(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if code, ok := aliasToCode[key]; ok {
		return catalogue[code], nil
	}
	if m, ok := catalogue[key]; ok {
		return m, nil
	}
	return Material{}, fmt.Errorf("unknown material %q (known: %s)", name, strings.Join(KnownNames(), ", "))
}

// MustLookup is Lookup for catalogue-internal references that cannot fail.
func MustLookup(name string) Material {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// KnownNames returns the sorted list of canonical codes and aliases,
// used in lookup-failure messages.
func KnownNames() []string {
	names := make([]string, 0, len(catalogue)+len(aliasToCode))
	for code := range catalogue {
		names = append(names, code)
	}
	for alias := range aliasToCode {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
