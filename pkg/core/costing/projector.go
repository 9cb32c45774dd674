package costing

// =============================================================================
// RESULT PROJECTOR
// Flattens the structured CostingData back into the legacy flat result
// mapping consumed by the external financial engine. All monetary fields
// are M$ unless the key states otherwise (cost_per_kw_net is $/kW).
// =============================================================================

// ProjectResults builds the flat output mapping.
func ProjectResults(data *CostingData) map[string]interface{} {
	a := &data.Accounts
	p := &data.Power

	out := map[string]interface{}{
		"power_balance": map[string]float64{
			"fusion_power":        p.FusionPower,
			"thermal_power":       p.ThermalPower,
			"gross_electric":      p.GrossElectric,
			"net_electric":        p.NetElectric,
			"recirculating_power": p.Recirculating,
			"thermal_efficiency":  p.ThermalEfficiency,
		},
		"q_eng":   p.QEngineering,
		"volumes": copyVolumes(data.Volumes),

		"cas_10_pre_construction": a.CAS10.Total(),
		"cas_21_total":            a.CAS21.Total(),
		"cas_22_total":            a.CAS22.Total(),
		"cas_2201":                a.CAS2201.Total(),
		"cas_2202":                a.CAS2202.Total(),
		"cas_2203":                a.CAS2203.Total(),
		"cas_2204":                a.CAS2204.Total(),
		"cas_2205":                a.CAS2205.Total(),
		"cas_2206":                a.CAS2206.Total(),
		"cas_2207":                a.CAS2207.Total(),

		"cas_23_turbine":         a.CAS23.Total(),
		"cas_24_electric":        a.CAS24.Total(),
		"cas_25_misc":            a.CAS25.Total(),
		"cas_26_heat_rejection":  a.CAS26.Total(),
		"cas_27_special":         a.CAS27.Total(),
		"cas_28_instrumentation": a.CAS28.Total(),
		"cas_29_contingency":     a.CAS29.Total(),
		"cas_30_indirect":        a.CAS30.Total(),
		"cas_40_owner_costs":     a.CAS40.Total(),
		"cas_50_supplementary":   a.CAS50.Total(),
		"cas_60_financial":       a.CAS60.Total(),
		"cas_70_om":              a.CAS70.Total(),
		"cas_80_fuel":            a.CAS80.Total(),
		"cas_90_financial":       a.CAS90.Total(),

		"direct_capital_cost": data.Totals.DirectCapital,
		"total_capital_cost":  data.Totals.TotalCapital,
		"total_epc_cost":      data.Totals.TotalEPC,
		"cost_per_kw_net":     data.Totals.CostPerKWNet,
		"epc_per_kw_net":      data.Totals.CostPerKWNet,
	}

	// Core component lines, for callers that read them individually.
	for _, l := range a.CAS220101.Lines {
		switch l.Name {
		case "first_wall":
			out["firstwall"] = l.Cost
		case "shield":
			out["shield"] = l.Cost
		}
	}
	out["blanket"] = blanketCost(a)
	out["divertor"] = divertorCost(a)

	// Physics-derived feeds for the external cash-flow engine, replacing
	// flat user-supplied O&M assumptions.
	if data.Basic.PNetMW > 0 {
		out["costing_fixed_om_per_mw"] = a.CAS70.Total() / data.Basic.PNetMW
	} else {
		out["costing_fixed_om_per_mw"] = 0.0
	}
	out["costing_annual_fuel_cost"] = a.CAS80.Total()

	return out
}

// blanketCost sums the breeder and multiplier lines.
func blanketCost(a *Accounts) float64 {
	var sum float64
	for _, l := range a.CAS220101.Lines {
		if l.Name == "blanket_breeder" || l.Name == "blanket_multiplier" {
			sum += l.Cost
		}
	}
	return sum
}

func divertorCost(a *Accounts) float64 {
	for _, l := range a.CAS2201.Lines {
		if l.Name == "divertor" {
			return l.Cost
		}
	}
	return 0
}

// copyVolumes snapshots the volumes map so callers cannot mutate the
// pipeline's copy.
func copyVolumes(vols map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(vols))
	for k, v := range vols {
		out[k] = v
	}
	return out
}
