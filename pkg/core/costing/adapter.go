package costing

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// CONFIGURATION ADAPTER
// Bridges the flat, loosely-typed caller config and the structured
// CostingData input groups. Tolerant by design: callers pass
// partially-overlapping historical schemas, so unknown keys are ignored and
// several legacy key spellings map to the same field. The adapter performs
// no numeric calculation beyond unit-free derivations of absent inputs.
// =============================================================================

// reactorTypeAliases normalizes legacy/raw codes and UI-facing labels.
var reactorTypeAliases = map[string]ReactorType{
	"tokamak": Tokamak,
	"mfe":     Tokamak,
	"tok":     Tokamak,
	"mirror":  Mirror,
	"tandem mirror": Mirror,
	"ife":           InertialFusion,
	"inertial":      InertialFusion,
	"laser":         InertialFusion,
	"icf":           InertialFusion,
}

var fuelTypeAliases = map[string]FuelType{
	"dt":        FuelDT,
	"d-t":       FuelDT,
	"deuterium-tritium": FuelDT,
	"dd":        FuelDD,
	"d-d":       FuelDD,
	"dhe3":      FuelDHe3,
	"d-he3":     FuelDHe3,
	"helium-3":  FuelDHe3,
	"pb11":      FuelPB11,
	"p-b11":     FuelPB11,
	"proton-boron": FuelPB11,
}

var magnetTypeAliases = map[string]MagnetType{
	"hts":    MagnetHTS,
	"rebco":  MagnetHTS,
	"ybco":   MagnetHTS,
	"lts":    MagnetLTS,
	"nb3sn":  MagnetLTS,
	"nbti":   MagnetLTS,
	"copper": MagnetCopper,
	"cu":     MagnetCopper,
	"resistive": MagnetCopper,
}

var coolantAliases = map[string]BlanketCoolant{
	"water":  CoolantWater,
	"h2o":    CoolantWater,
	"helium": CoolantHelium,
	"he":     CoolantHelium,
	"flibe":  CoolantFLiBe,
	"molten salt": CoolantFLiBe,
	"pbli":        CoolantPbLi,
	"lead lithium": CoolantPbLi,
	"lead-lithium": CoolantPbLi,
	"lithium":      CoolantLithium,
	"li":           CoolantLithium,
}

var regionAliases = map[string]Region{
	"usa":    RegionUSA,
	"us":     RegionUSA,
	"europe": RegionEurope,
	"eu":     RegionEurope,
	"asia":   RegionAsia,
}

// ApplyConfig populates a fresh CostingData from the flat configuration.
// Recognized keys overwrite the documented defaults; unknown keys are
// ignored. Unrecognized enum values are fatal: no safe default formula
// family exists for them.
func ApplyConfig(config map[string]interface{}) (*CostingData, error) {
	data := NewCostingData()

	for key, raw := range config {
		switch strings.ToLower(strings.TrimSpace(key)) {
		// --- Reactor / fuel selection (with historical aliases) ---
		case "reactor_type", "reactor", "confinement":
			rt, ok := reactorTypeAliases[normalize(raw)]
			if !ok {
				return nil, fmt.Errorf("unrecognized reactor_type %q", raw)
			}
			data.Basic.ReactorType = rt
		case "fuel_type", "fuel", "fuel_cycle":
			ft, ok := fuelTypeAliases[normalize(raw)]
			if !ok {
				return nil, fmt.Errorf("unrecognized fuel_type %q", raw)
			}
			data.Basic.FuelType = ft
		case "magnet_type", "magnet_technology", "magnets":
			mt, ok := magnetTypeAliases[normalize(raw)]
			if !ok {
				return nil, fmt.Errorf("unrecognized magnet_type %q", raw)
			}
			data.Basic.MagnetType = mt
		case "blanket_coolant", "coolant", "primary_coolant":
			bc, ok := coolantAliases[normalize(raw)]
			if !ok {
				return nil, fmt.Errorf("unrecognized blanket_coolant %q", raw)
			}
			data.Basic.Coolant = bc
		case "region", "site_region":
			rg, ok := regionAliases[normalize(raw)]
			if !ok {
				return nil, fmt.Errorf("unrecognized region %q", raw)
			}
			data.Basic.Region = rg
		case "lsa_level", "lsa":
			v := int(asFloat(raw, float64(data.Basic.LSA)))
			if v < 1 || v > 4 {
				return nil, fmt.Errorf("lsa_level must be 1-4, got %v", raw)
			}
			data.Basic.LSA = LSALevel(v)

		// --- Power parameters ---
		case "fusion_power_mw", "p_fusion":
			data.PowerIn.FusionPowerMW = asFloat(raw, 0)
		case "thermal_power_mw", "p_thermal":
			// Direct override; the power balance recomputes it when
			// fusion inputs are present.
			data.Basic.PThermalMW = asFloat(raw, 0)
		case "net_electric_mw", "p_net":
			data.Basic.PNetMW = asFloat(raw, 0)
		case "q_plasma", "plasma_q":
			data.PowerIn.QPlasma = asFloat(raw, data.PowerIn.QPlasma)
		case "heating_power_mw", "auxiliary_heating_mw":
			data.PowerIn.HeatingPowerMW = asFloat(raw, 0)
		case "thermal_efficiency", "eta_th":
			data.PowerIn.ThermalEfficiency = asFloat(raw, data.PowerIn.ThermalEfficiency)
		case "neutron_multiplication", "blanket_multiplication", "mn":
			data.PowerIn.NeutronMult = asFloat(raw, data.PowerIn.NeutronMult)
		case "target_yield_mj", "yield_mj":
			data.PowerIn.TargetYieldMJ = asFloat(raw, 0)
		case "repetition_rate_hz", "rep_rate":
			data.PowerIn.RepRateHz = asFloat(raw, 0)
		case "driver_efficiency", "eta_driver":
			data.PowerIn.DriverEfficiency = asFloat(raw, data.PowerIn.DriverEfficiency)

		// --- Geometry ---
		case "major_radius", "major_radius_m", "r0":
			data.Build.MajorRadiusM = asFloat(raw, data.Build.MajorRadiusM)
		case "minor_radius", "minor_radius_m", "chamber_radius":
			data.Build.MinorRadiusM = asFloat(raw, data.Build.MinorRadiusM)
		case "elongation", "kappa":
			data.Build.Elongation = asFloat(raw, data.Build.Elongation)
		case "chamber_length", "chamber_length_m":
			data.Build.ChamberLengthM = asFloat(raw, data.Build.ChamberLengthM)
		case "first_wall_thickness", "firstwall_thickness":
			data.Build.FirstWallM = asFloat(raw, data.Build.FirstWallM)
		case "blanket_thickness":
			data.Build.BlanketM = asFloat(raw, data.Build.BlanketM)
		case "shield_thickness":
			data.Build.ShieldM = asFloat(raw, data.Build.ShieldM)

		// --- Materials (resolved by the costing stage, not here) ---
		case "first_wall_material", "firstwall_material":
			data.Materials.FirstWall = asString(raw, data.Materials.FirstWall)
		case "blanket_type", "breeder_material":
			data.Materials.Breeder = asString(raw, data.Materials.Breeder)
		case "blanket_multiplier", "multiplier_material":
			data.Materials.Multiplier = asString(raw, data.Materials.Multiplier)
		case "structure_material":
			data.Materials.Structure = asString(raw, data.Materials.Structure)
		case "shield_material":
			data.Materials.Shield = asString(raw, data.Materials.Shield)

		// --- Magnets ---
		case "n_tf_coils", "tf_coils", "n_coils":
			data.Basic.NTFCoils = int(asFloat(raw, float64(data.Basic.NTFCoils)))

		// --- Plant-level flags ---
		case "is_foak", "foak":
			data.Basic.FOAK = asBool(raw, data.Basic.FOAK)
		case "noak":
			data.Basic.FOAK = !asBool(raw, !data.Basic.FOAK)
		case "capacity_factor", "availability":
			data.Basic.Availability = asFloat(raw, data.Basic.Availability)
		case "plant_lifetime_years", "plant_life":
			data.Basic.PlantLifetimeYrs = asFloat(raw, data.Basic.PlantLifetimeYrs)
		case "construction_years", "construction_time":
			data.Basic.ConstructionYears = asFloat(raw, data.Basic.ConstructionYears)

		// --- Cost calibration knobs ---
		case "land_cost_per_acre":
			data.CASIn.LandCostPerAcre = asFloat(raw, data.CASIn.LandCostPerAcre)
		case "site_acres":
			data.CASIn.SiteAcres = asFloat(raw, data.CASIn.SiteAcres)
		case "indirect_factor":
			data.CASIn.IndirectFactor = asFloat(raw, data.CASIn.IndirectFactor)
		case "capitalized_pct":
			data.CASIn.CapitalizedPct = asFloat(raw, data.CASIn.CapitalizedPct)
		case "fixed_om_per_kw_yr":
			data.CASIn.FixedOMPerKWYr = asFloat(raw, data.CASIn.FixedOMPerKWYr)
		case "fuel_cost_per_kg":
			data.CASIn.FuelCostPerKg = asFloat(raw, data.CASIn.FuelCostPerKg)
		case "capital_recovery_factor":
			data.CASIn.CapitalRecoveryPct = asFloat(raw, data.CASIn.CapitalRecoveryPct)

		default:
			// Unknown keys are ignored: callers pass overlapping
			// historical schemas.
		}
	}

	// Derived fields when only indirect inputs are given.
	if data.PowerIn.HeatingPowerMW == 0 && data.PowerIn.FusionPowerMW > 0 && data.PowerIn.QPlasma > 0 {
		data.PowerIn.HeatingPowerMW = data.PowerIn.FusionPowerMW / data.PowerIn.QPlasma
	}
	if data.PowerIn.FusionPowerMW == 0 && data.PowerIn.HeatingPowerMW > 0 && data.PowerIn.QPlasma > 0 {
		data.PowerIn.FusionPowerMW = data.PowerIn.QPlasma * data.PowerIn.HeatingPowerMW
	}

	return data, nil
}

// normalize lowercases and trims an enum-valued config entry.
func normalize(raw interface{}) string {
	return strings.ToLower(strings.TrimSpace(asString(raw, "")))
}

// asFloat coerces numbers and numeric strings; anything else keeps def.
func asFloat(raw interface{}, def float64) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

func asBool(raw interface{}, def bool) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

func asString(raw interface{}, def string) string {
	if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return def
}
