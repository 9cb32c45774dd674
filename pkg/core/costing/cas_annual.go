package costing

import "fusioncost/pkg/core/units"

// =============================================================================
// CAS 70 / 80 / 90 ANNUALIZED ACCOUNTS
// Computed once direct and total capital are known. Reported in M$/yr; the
// external financial engine owns the conversion to per-unit-energy cost.
// =============================================================================

// CalculateCAS70 populates annualized operations and maintenance:
// fixed $/kW-yr rate x net electric power.
func CalculateCAS70(data *CostingData) {
	acc := &data.Accounts.CAS70
	acc.Code = "CAS 70"

	pnet := data.Basic.PNetMW
	if pnet <= 0 {
		return
	}
	acc.Add("fixed_om", data.CASIn.FixedOMPerKWYr*pnet*1000/1e6)
}

// CalculateCAS80 populates the annualized fuel account: fuel unit cost x
// annual burn rate, where the burn follows from fusion power, availability
// and the specific energy of the fuel cycle.
func CalculateCAS80(data *CostingData) {
	acc := &data.Accounts.CAS80
	acc.Code = "CAS 80"

	perKg := fuelEnergyPerKgJ[data.Basic.FuelType]
	if perKg <= 0 || data.Power.FusionPower <= 0 {
		return
	}
	annualEnergyJ := data.Power.FusionPower * units.WattsPerMegawatt *
		units.SecondsPerYear * data.Basic.Availability
	burnKgPerYr := annualEnergyJ / perKg
	acc.Add("fuel", burnKgPerYr*data.CASIn.FuelCostPerKg/1e6)
}

// CalculateCAS90 populates the annualized financial account:
// capital-recovery factor x total capital cost.
func CalculateCAS90(data *CostingData) {
	acc := &data.Accounts.CAS90
	acc.Code = "CAS 90"
	acc.Add("capital_recovery", data.CASIn.CapitalRecoveryPct*data.Totals.TotalCapital)
}
