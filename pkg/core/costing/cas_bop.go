package costing

// =============================================================================
// CAS 23 - 28 BALANCE OF PLANT
// Pure power-scaling accounts: cost = ($/kW factor / 1000) x P_thermal(MW).
// =============================================================================

// CalculateCAS23to28 populates the balance-of-plant accounts.
func CalculateCAS23to28(data *CostingData) {
	pth := data.Basic.PThermalMW
	scale := func(factor float64) float64 { return factor / 1000 * pth }

	turbine := &data.Accounts.CAS23
	turbine.Code = "CAS 23"
	turbine.Add("turbine_plant", scale(TurbinePlantPerKW))

	electric := &data.Accounts.CAS24
	electric.Code = "CAS 24"
	electric.Add("electric_plant", scale(ElectricPlantPerKW))

	misc := &data.Accounts.CAS25
	misc.Code = "CAS 25"
	misc.Add("misc_plant", scale(MiscPlantPerKW))

	rejection := &data.Accounts.CAS26
	rejection.Code = "CAS 26"
	rejection.Add("heat_rejection", scale(HeatRejectionPerKW))

	// Initial coolant and breeder inventory.
	special := &data.Accounts.CAS27
	special.Code = "CAS 27"
	special.Add("special_materials", scale(SpecialMaterialsPerKW))

	instr := &data.Accounts.CAS28
	instr.Code = "CAS 28"
	instr.Add("instrumentation", scale(InstrumentationPerKW))
}
