// Package costing implements the parametric reactor cost-estimation
// pipeline: a fixed-order sequence of calculations that converts a flat
// plant configuration into a power balance and a hierarchical capital-cost
// breakdown by CAS account.
// This file defines the enumerations and the CostingData aggregate.
package costing

import "fmt"

// =============================================================================
// CLOSED ENUMERATIONS
// Every stage that switches on one of these must handle all declared
// variants; an unrecognized value is a fatal configuration error.
// =============================================================================

// ReactorType selects the formula family for power balance, geometry and
// magnet costing.
type ReactorType int

const (
	Tokamak ReactorType = iota
	Mirror
	InertialFusion
)

// String returns the UI-facing label.
func (r ReactorType) String() string {
	switch r {
	case Tokamak:
		return "Tokamak"
	case Mirror:
		return "Mirror"
	case InertialFusion:
		return "IFE"
	default:
		return fmt.Sprintf("ReactorType(%d)", int(r))
	}
}

// FuelType selects the fusion energy-partition ratios and fuel costs.
type FuelType int

const (
	FuelDT FuelType = iota
	FuelDD
	FuelDHe3
	FuelPB11
)

func (f FuelType) String() string {
	switch f {
	case FuelDT:
		return "DT"
	case FuelDD:
		return "DD"
	case FuelDHe3:
		return "DHe3"
	case FuelPB11:
		return "pB11"
	default:
		return fmt.Sprintf("FuelType(%d)", int(f))
	}
}

// MagnetType selects conductor material, cost multiplier and the
// magnet/cryogenic recirculating-power fractions.
type MagnetType int

const (
	MagnetHTS MagnetType = iota
	MagnetLTS
	MagnetCopper
)

func (m MagnetType) String() string {
	switch m {
	case MagnetHTS:
		return "HTS"
	case MagnetLTS:
		return "LTS"
	case MagnetCopper:
		return "Copper"
	default:
		return fmt.Sprintf("MagnetType(%d)", int(m))
	}
}

// BlanketCoolant selects the breeding-blanket material family. Water and
// helium blankets use a solid breeder plus a neutron multiplier; molten-salt
// and liquid-metal coolants are self-breeding.
type BlanketCoolant int

const (
	CoolantWater BlanketCoolant = iota
	CoolantHelium
	CoolantFLiBe
	CoolantPbLi
	CoolantLithium
)

func (c BlanketCoolant) String() string {
	switch c {
	case CoolantWater:
		return "Water"
	case CoolantHelium:
		return "Helium"
	case CoolantFLiBe:
		return "FLiBe"
	case CoolantPbLi:
		return "PbLi"
	case CoolantLithium:
		return "Lithium"
	default:
		return fmt.Sprintf("BlanketCoolant(%d)", int(c))
	}
}

// LSALevel is the Level of Safety Assurance regulatory tier (1 = most
// stringent). It drives the CAS 40 owner-cost percentage.
type LSALevel int

const (
	LSA1 LSALevel = 1
	LSA2 LSALevel = 2
	LSA3 LSALevel = 3
	LSA4 LSALevel = 4
)

// Region applies a construction cost index to site-built accounts.
type Region int

const (
	RegionUSA Region = iota
	RegionEurope
	RegionAsia
)

func (r Region) String() string {
	switch r {
	case RegionUSA:
		return "USA"
	case RegionEurope:
		return "Europe"
	case RegionAsia:
		return "Asia"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// =============================================================================
// COSTING DATA AGGREGATE
// One mutable aggregate threaded through every stage. Stages run strictly
// sequentially and each writes a disjoint group of fields, so a run is a
// single-writer transform. Each run must use its own CostingData.
// =============================================================================

// BasicParams holds the reactor selection and plant-level flags shared by
// every stage.
type BasicParams struct {
	ReactorType ReactorType
	FuelType    FuelType
	MagnetType  MagnetType
	Coolant     BlanketCoolant
	LSA         LSALevel
	Region      Region

	NTFCoils          int
	FOAK              bool
	Availability      float64 // capacity factor, 0-1
	PlantLifetimeYrs  float64
	ConstructionYears float64

	// Updated by the power balance calculator for downstream stages.
	PThermalMW float64 // p_et
	PNetMW     float64 // p_nrl
}

// PowerInput holds the power-balance input parameters.
type PowerInput struct {
	FusionPowerMW     float64 // optional direct input; derived from Q x heating if 0
	QPlasma           float64
	HeatingPowerMW    float64
	NeutronMult       float64 // blanket neutron energy multiplication
	ThermalEfficiency float64

	// Inertial fusion drivers
	TargetYieldMJ    float64
	RepRateHz        float64
	DriverEfficiency float64
}

// PowerOutput holds the computed power balance. All values in MW.
type PowerOutput struct {
	FusionPower   float64
	AlphaPower    float64 // charged-particle fraction
	NeutronPower  float64 // after blanket multiplication
	ThermalPower  float64
	GrossElectric float64

	// Recirculating loads
	MagnetPower   float64
	CryoPower     float64
	HeatingPower  float64 // heating systems / IFE driver draw
	PumpingPower  float64
	AuxPower      float64
	Recirculating float64

	NetElectric       float64
	QEngineering      float64
	ThermalEfficiency float64
}

// RadialBuild holds the geometry inputs. Layer thicknesses stack outward
// from the plasma/chamber boundary: first wall, blanket, shield.
type RadialBuild struct {
	MajorRadiusM   float64 // tokamak major radius
	MinorRadiusM   float64 // plasma minor radius / chamber radius
	Elongation     float64 // tokamak plasma elongation (kappa)
	ChamberLengthM float64 // mirror central-cell length
	FirstWallM     float64
	BlanketM       float64
	ShieldM        float64
}

// LayerRadii is the inner/outer radius of one radial-build layer.
type LayerRadii struct {
	InnerM float64
	OuterM float64
}

// MaterialSelection holds the material choices for the volume-costed
// accounts, as canonical codes or aliases resolved at costing time.
type MaterialSelection struct {
	FirstWall  string
	Breeder    string // solid breeder or self-breeding coolant
	Multiplier string // neutron multiplier; empty for self-breeding blankets
	Structure  string
	Shield     string
}

// CASInput holds the cost-account calibration inputs with documented
// defaults applied by the adapter.
type CASInput struct {
	// $/kW-thermal building factors (CAS 21) and BOP factors (CAS 23-28)
	// live in factors.go; these are the per-run knobs.
	LandCostPerAcre    float64 // CAS 10
	SiteAcres          float64
	IndirectFactor     float64 // CAS 30 scaling-law factor
	CapitalizedPct     float64 // CAS 50+60, fraction of direct capital
	FixedOMPerKWYr     float64 // CAS 70, $/kW-yr
	FuelCostPerKg      float64 // CAS 80
	CapitalRecoveryPct float64 // CAS 90 capital recovery factor
}

// CostingData is the single aggregate passed through every pipeline stage.
type CostingData struct {
	Basic     BasicParams
	PowerIn   PowerInput
	Power     PowerOutput
	Build     RadialBuild
	Materials MaterialSelection
	CASIn     CASInput

	// Computed once by the geometry stage; never mutated afterward.
	Volumes map[string]float64 // component -> m^3
	Radii   map[string]LayerRadii

	Accounts Accounts
	Totals   Totals
}

// Totals holds the aggregated summary figures, in M$ unless noted.
type Totals struct {
	DirectCapital   float64 // C200000 = CAS 21-29
	TotalCapital    float64 // C100000+C200000+C300000+C400000+C500000+C600000
	TotalEPC        float64 // identical to TotalCapital (legacy naming duality)
	CostPerKWNet    float64 // $/kW
	AnnualizedCosts float64 // CAS 70+80+90, M$/yr
}

// NewCostingData returns a zero-initialized aggregate with documented
// defaults for absent configuration keys.
func NewCostingData() *CostingData {
	return &CostingData{
		Basic: BasicParams{
			ReactorType:       Tokamak,
			FuelType:          FuelDT,
			MagnetType:        MagnetHTS,
			Coolant:           CoolantHelium,
			LSA:               LSA2,
			Region:            RegionUSA,
			NTFCoils:          12,
			Availability:      0.85,
			PlantLifetimeYrs:  30,
			ConstructionYears: 6,
		},
		PowerIn: PowerInput{
			QPlasma:           10,
			NeutronMult:       1.1,
			ThermalEfficiency: 0.40,
			DriverEfficiency:  0.10,
		},
		Build: RadialBuild{
			MajorRadiusM:   6.2,
			MinorRadiusM:   2.0,
			Elongation:     1.8,
			ChamberLengthM: 20,
			FirstWallM:     0.02,
			BlanketM:       0.85,
			ShieldM:        0.75,
		},
		Materials: MaterialSelection{
			FirstWall:  "W",
			Breeder:    "Li4SiO4",
			Multiplier: "Be",
			Structure:  "FS",
			Shield:     "SS316",
		},
		CASIn: CASInput{
			LandCostPerAcre:    0.01, // M$/acre
			SiteAcres:          1000,
			IndirectFactor:     0.5,
			CapitalizedPct:     0.02,
			FixedOMPerKWYr:     60,
			FuelCostPerKg:      2200,
			CapitalRecoveryPct: 0.08,
		},
		Volumes: map[string]float64{},
		Radii:   map[string]LayerRadii{},
	}
}
