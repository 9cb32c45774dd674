package costing

import (
	"fmt"
	"math"

	"fusioncost/pkg/core/materials"
	"fusioncost/pkg/core/units"
)

// =============================================================================
// CAS 22.03 MAGNETS
// Conductor volume is estimated from coil count, winding cross-section and
// the coil bore set by the radial build. Inertial-fusion designs have no
// confinement magnets and short-circuit to a zero account.
// =============================================================================

// Winding-pack cross-section and standoff from the shield, m.
const (
	magnetRadialThickness = 0.50
	magnetWidth           = 0.50
	magnetStandoff        = 0.50
)

// conductorCode maps magnet technology to the catalogue conductor material.
var conductorCode = map[MagnetType]string{
	MagnetHTS:    "HTS",
	MagnetLTS:    "Nb3Sn",
	MagnetCopper: "Cu",
}

// magnetCostMult is the technology cost multiplier applied on top of the
// conductor material cost (tape form factor, cable-in-conduit, bulk copper).
var magnetCostMult = map[MagnetType]float64{
	MagnetHTS:    HTSCostMult,
	MagnetLTS:    LTSCostMult,
	MagnetCopper: CopperCostMult,
}

// windingVolumeMult scales the winding cross-section for the achievable
// current density: superconducting tape packs far more current per unit
// area than cable-in-conduit, and resistive copper needs a massive
// cross-section to hold ohmic losses at confinement-grade fields.
var windingVolumeMult = map[MagnetType]float64{
	MagnetHTS:    1.0,
	MagnetLTS:    2.0,
	MagnetCopper: 30.0,
}

// CalculateCAS2203 populates the magnet account.
func CalculateCAS2203(data *CostingData) error {
	acc := &data.Accounts.CAS2203
	acc.Code = "CAS 22.03"

	if data.Basic.ReactorType == InertialFusion {
		// No magnets; the account stays zero rather than falling
		// through to a tokamak formula.
		return nil
	}

	conductor, err := materials.Lookup(conductorCode[data.Basic.MagnetType])
	if err != nil {
		return fmt.Errorf("magnet conductor: %w", err)
	}

	vol := conductorVolume(data)
	conductorCost := float64(conductor.CostForVolume(units.CubicMeters(vol))) *
		magnetCostMult[data.Basic.MagnetType]
	acc.Add("conductor", conductorCost)
	acc.Add("structure", conductorCost*StructureCostPct)

	// Superconducting designs need a cryostat and a cryogenic plant
	// scaled to the heat load, which tracks thermal power at this
	// fidelity. Resistive copper coils need neither.
	if data.Basic.MagnetType != MagnetCopper {
		acc.Add("cryostat", CryostatPerMWth*data.Basic.PThermalMW)
		acc.Add("cryoplant", CryoplantPerMWth*data.Basic.PThermalMW)
	}

	return nil
}

// conductorVolume estimates the total winding volume, m^3.
func conductorVolume(data *CostingData) float64 {
	shield, ok := data.Radii[CompShield]
	if !ok {
		return 0
	}
	bore := shield.OuterM + magnetStandoff
	crossSection := magnetRadialThickness * magnetWidth * windingVolumeMult[data.Basic.MagnetType]
	turnLength := 2 * math.Pi * bore

	switch data.Basic.ReactorType {
	case Tokamak:
		// n TF coils, each a loop around the build at the bore radius,
		// elongated with the plasma.
		return float64(data.Basic.NTFCoils) * turnLength * crossSection * data.Build.Elongation
	case Mirror:
		// Solenoid rings spaced along the central cell.
		return float64(data.Basic.NTFCoils) * turnLength * crossSection
	default:
		return 0
	}
}
