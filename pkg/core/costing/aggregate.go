package costing

// =============================================================================
// AGGREGATOR
// Deterministic, fixed-order roll-ups. Every function is idempotent and
// side-effect-free beyond writing its own total field: recomputing with
// unchanged sub-accounts yields bit-identical results.
// =============================================================================

// AggregateCAS22 rolls the reactor plant equipment sub-categories into
// CAS 22. Runs after CAS 22.01 through 22.07 are final.
func AggregateCAS22(data *CostingData) {
	a := &data.Accounts
	acc := &a.CAS22
	acc.Code = "CAS 22"
	acc.Lines = nil

	acc.Add("cas_2201", a.CAS2201.Total())
	acc.Add("cas_2202", a.CAS2202.Total())
	acc.Add("cas_2203", a.CAS2203.Total())
	acc.Add("cas_2204", a.CAS2204.Total())
	acc.Add("cas_2205", a.CAS2205.Total())
	acc.Add("cas_2206", a.CAS2206.Total())
	acc.Add("cas_2207", a.CAS2207.Total())
}

// AggregateDirectCapital sums CAS 21-29 into the direct capital cost
// (C200000). Runs after the contingency account is final.
func AggregateDirectCapital(data *CostingData) {
	a := &data.Accounts
	data.Totals.DirectCapital = a.CAS21.Total() + a.CAS22.Total() +
		a.CAS23.Total() + a.CAS24.Total() + a.CAS25.Total() +
		a.CAS26.Total() + a.CAS27.Total() + a.CAS28.Total() +
		a.CAS29.Total()
}

// AggregateTotalCapital sums direct capital with the pre-construction,
// indirect, owner and capitalized accounts into the total capital cost.
// Total capital and total EPC are the same value under two legacy names.
func AggregateTotalCapital(data *CostingData) {
	a := &data.Accounts
	t := &data.Totals

	t.TotalCapital = a.CAS10.Total() + t.DirectCapital + a.CAS30.Total() +
		a.CAS40.Total() + a.CAS50.Total() + a.CAS60.Total()
	t.TotalEPC = t.TotalCapital

	if data.Basic.PNetMW > 0 {
		// M$ -> $, MW -> kW: x1e6 / (MW x 1000) = x1000 / MW.
		t.CostPerKWNet = t.TotalCapital * 1000 / data.Basic.PNetMW
	} else {
		t.CostPerKWNet = 0
	}
}

// AggregateAnnualized sums the annualized accounts, M$/yr.
func AggregateAnnualized(data *CostingData) {
	a := &data.Accounts
	data.Totals.AnnualizedCosts = a.CAS70.Total() + a.CAS80.Total() + a.CAS90.Total()
}
