package costing

import (
	"fmt"

	"fusioncost/pkg/core/materials"
	"fusioncost/pkg/core/units"
)

// =============================================================================
// CAS 22.01 - 22.07 REACTOR PLANT EQUIPMENT
// CAS 22.01.01 uses the material-volume formula:
// cost = volume x density x raw cost x manufacturing multiplier, in M$.
// The remaining sub-accounts use power-scaling benchmarks.
// =============================================================================

// Divertor cost relative to the first wall; tokamaks only.
const divertorFWFraction = 0.35

// Volume fractions of a solid-breeder blanket (water/helium coolant); the
// remainder is coolant channels and structure, carried under CAS 22.05.
const (
	solidBreederVolFrac = 0.75
	neutronMultVolFrac  = 0.10
)

// CalculateCAS220101 costs the first wall, blanket and shield from the
// geometry volumes and the material catalogue. Blanket material selection
// dispatches on the primary coolant: water and helium blankets use a solid
// breeder plus a neutron multiplier; molten-salt and liquid-metal coolants
// are self-breeding with no separate multiplier.
func CalculateCAS220101(data *CostingData) error {
	acc := &data.Accounts.CAS220101
	acc.Code = "CAS 22.01.01"

	fw, err := materials.Lookup(data.Materials.FirstWall)
	if err != nil {
		return fmt.Errorf("first wall: %w", err)
	}
	acc.Add("first_wall", float64(fw.CostForVolume(units.CubicMeters(data.Volumes[CompFirstWall]))))

	blanketVol := units.CubicMeters(data.Volumes[CompBlanket])
	switch data.Basic.Coolant {
	case CoolantWater, CoolantHelium:
		breeder, err := materials.Lookup(data.Materials.Breeder)
		if err != nil {
			return fmt.Errorf("breeder: %w", err)
		}
		mult, err := materials.Lookup(data.Materials.Multiplier)
		if err != nil {
			return fmt.Errorf("neutron multiplier: %w", err)
		}
		acc.Add("blanket_breeder", float64(breeder.CostForVolume(blanketVol*solidBreederVolFrac)))
		acc.Add("blanket_multiplier", float64(mult.CostForVolume(blanketVol*neutronMultVolFrac)))
	case CoolantFLiBe, CoolantPbLi, CoolantLithium:
		// Self-breeding: the coolant itself fills the blanket.
		breeder, err := materials.Lookup(data.Basic.Coolant.String())
		if err != nil {
			return fmt.Errorf("self-breeding coolant: %w", err)
		}
		acc.Add("blanket_breeder", float64(breeder.CostForVolume(blanketVol)))
	}

	shield, err := materials.Lookup(data.Materials.Shield)
	if err != nil {
		return fmt.Errorf("shield: %w", err)
	}
	acc.Add("shield", float64(shield.CostForVolume(units.CubicMeters(data.Volumes[CompShield]))))

	return nil
}

// CalculateCAS2201 rolls the core account up with the divertor line
// (tokamaks only; mirrors and IFE chambers have no divertor).
func CalculateCAS2201(data *CostingData) {
	acc := &data.Accounts.CAS2201
	acc.Code = "CAS 22.01"

	acc.Add("core_components", data.Accounts.CAS220101.Total())
	if data.Basic.ReactorType == Tokamak {
		var fwCost float64
		for _, l := range data.Accounts.CAS220101.Lines {
			if l.Name == "first_wall" {
				fwCost = l.Cost
			}
		}
		acc.Add("divertor", fwCost*divertorFWFraction)
	}
}

// CalculateCAS2202 costs the main heat transfer and transport loop.
func CalculateCAS2202(data *CostingData) {
	acc := &data.Accounts.CAS2202
	acc.Code = "CAS 22.02"
	acc.Add("primary_loop", HeatTransferPerKW/1000*data.Basic.PThermalMW)
}

// CalculateCAS2204to2207 costs supplemental heating (or the IFE driver),
// primary structure, vacuum systems and power supplies.
func CalculateCAS2204to2207(data *CostingData) {
	heating := &data.Accounts.CAS2204
	heating.Code = "CAS 22.04"
	// Scales with the injected/driver power, not the thermal power.
	heating.Add("heating_systems", HeatingSystemPerKW/1000*data.Power.HeatingPower)

	structure := &data.Accounts.CAS2205
	structure.Code = "CAS 22.05"
	structure.Add("primary_structure",
		(data.Accounts.CAS2201.Total()+data.Accounts.CAS2203.Total())*PrimaryStructurePct)

	vacuum := &data.Accounts.CAS2206
	vacuum.Code = "CAS 22.06"
	vacuum.Add("vacuum_systems", VacuumSystemPerKW/1000*data.Basic.PThermalMW)

	supplies := &data.Accounts.CAS2207
	supplies.Code = "CAS 22.07"
	supplies.Add("power_supplies", PowerSupplyPerKW/1000*data.Basic.PThermalMW)
}
