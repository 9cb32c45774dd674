package costing

// =============================================================================
// CAS 10 PRE-CONSTRUCTION & CAS 21 BUILDINGS
// Power-scaling formula family: cost = ($/kW factor / 1000) x P_thermal(MW).
// Reactor, turbine and hot-cell buildings scale by 0.5 for non-DT fuel
// cycles (less tritium handling infrastructure).
// =============================================================================

// Fixed pre-construction line items, M$.
const (
	permittingCost   = 40.0
	plantStudiesCost = 15.0
)

// CalculateCAS10 populates the pre-construction account: land acquisition,
// permitting and plant licensing studies.
func CalculateCAS10(data *CostingData) {
	acc := &data.Accounts.CAS10
	acc.Code = "CAS 10"

	acc.Add("land", data.CASIn.SiteAcres*data.CASIn.LandCostPerAcre)
	acc.Add("permitting", permittingCost)
	acc.Add("plant_studies", plantStudiesCost)
}

// CalculateCAS21 populates the buildings account from $/kW-thermal
// benchmarks, the regional construction index and the fuel-cycle scaling.
func CalculateCAS21(data *CostingData) {
	acc := &data.Accounts.CAS21
	acc.Code = "CAS 21"

	pth := data.Basic.PThermalMW
	region := regionCostIndex[data.Basic.Region]

	fuelScale := 1.0
	if data.Basic.FuelType != FuelDT {
		fuelScale = NonDTBuildingScale
	}

	scale := func(factor float64) float64 {
		return factor / 1000 * pth * region
	}

	acc.Add("site_improvements", scale(SiteImprovementsPerKW))
	acc.Add("reactor_building", scale(ReactorBuildingPerKW)*fuelScale)
	acc.Add("turbine_building", scale(TurbineBuildingPerKW)*fuelScale)
	acc.Add("hot_cell", scale(HotCellBuildingPerKW)*fuelScale)
	acc.Add("auxiliary_buildings", scale(AuxBuildingsPerKW))
	acc.Add("control_building", scale(ControlBuildingPerKW))
	if data.Basic.MagnetType != MagnetCopper && data.Basic.ReactorType != InertialFusion {
		acc.Add("cryogenics_building", scale(CryoBuildingPerKW))
	}

	// First-of-a-kind designs carry a building-level contingency line on
	// top of the overall CAS 29 contingency; the overlap is intentional.
	if data.Basic.FOAK {
		acc.Add("foak_contingency", acc.Total()*FOAKBuildingPct)
	}
}
