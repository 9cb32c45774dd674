package costing

import (
	"fmt"
	"math"
)

// =============================================================================
// GEOMETRY / VOLUME CALCULATOR
// Layer thicknesses stack outward from the plasma/chamber boundary in a
// fixed order: first wall, blanket, shield. Each layer's volume uses the
// geometry of the reactor type. Volumes are non-negative by construction:
// the outer radius term is always computed from the larger radius.
// =============================================================================

// Component names used in the Volumes and Radii maps.
const (
	CompFirstWall = "first_wall"
	CompBlanket   = "blanket"
	CompShield    = "shield"
)

// CalculateGeometry computes the radii and volumes maps from the radial
// build. Both maps are written once here and never mutated afterward.
func CalculateGeometry(data *CostingData) error {
	b := data.Build

	// Stack the build outward from the plasma/chamber radius.
	layers := []struct {
		name      string
		thickness float64
	}{
		{CompFirstWall, b.FirstWallM},
		{CompBlanket, b.BlanketM},
		{CompShield, b.ShieldM},
	}

	inner := b.MinorRadiusM
	for _, layer := range layers {
		outer := inner + layer.thickness
		data.Radii[layer.name] = LayerRadii{InnerM: inner, OuterM: outer}

		var vol float64
		switch data.Basic.ReactorType {
		case Tokamak:
			vol = TorusShellVolume(b.MajorRadiusM, inner, outer, b.Elongation)
		case Mirror:
			vol = CylinderShellVolume(inner, outer, b.ChamberLengthM)
		case InertialFusion:
			vol = SphericalShellVolume(inner, outer)
		default:
			return fmt.Errorf("geometry: unrecognized reactor type %d", int(data.Basic.ReactorType))
		}
		data.Volumes[layer.name] = vol
		inner = outer
	}

	return nil
}

// TorusShellVolume is the volume of a hollow torus of major radius R between
// minor radii a (inner) and b (outer), scaled by the plasma elongation:
// V = 2 pi^2 R kappa (b^2 - a^2).
func TorusShellVolume(majorR, inner, outer, elongation float64) float64 {
	if outer < inner {
		inner, outer = outer, inner
	}
	return 2 * math.Pi * math.Pi * majorR * elongation * (outer*outer - inner*inner)
}

// CylinderShellVolume is the volume of a cylindrical ring of length L:
// V = pi L (b^2 - a^2).
func CylinderShellVolume(inner, outer, length float64) float64 {
	if outer < inner {
		inner, outer = outer, inner
	}
	return math.Pi * length * (outer*outer - inner*inner)
}

// SphericalShellVolume is the volume between two concentric spheres:
// V = 4/3 pi (b^3 - a^3).
func SphericalShellVolume(inner, outer float64) float64 {
	if outer < inner {
		inner, outer = outer, inner
	}
	return 4.0 / 3.0 * math.Pi * (outer*outer*outer - inner*inner*inner)
}
