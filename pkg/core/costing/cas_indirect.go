package costing

import "math"

// =============================================================================
// CAS 29 / 30 / 40 / 50 / 60 CONTINGENCY, INDIRECT AND OWNER COSTS
// Percentage-of-subtotal formula family. These accounts read the direct
// accounts, so they run only after CAS 21-28 are final.
// =============================================================================

// CalculateCAS29 populates the contingency account: 10% of the CAS 21-28
// subtotal for first-of-a-kind designs. It is computed independently of the
// CAS 21 building-level FOAK line; the partial overlap is a deliberate
// two-tier conservatism, kept as observed.
func CalculateCAS29(data *CostingData) {
	acc := &data.Accounts.CAS29
	acc.Code = "CAS 29"

	if !data.Basic.FOAK {
		return
	}

	a := &data.Accounts
	subtotal := a.CAS21.Total() + a.CAS22.Total() + a.CAS23.Total() +
		a.CAS24.Total() + a.CAS25.Total() + a.CAS26.Total() +
		a.CAS27.Total() + a.CAS28.Total()
	acc.Add("foak_contingency", subtotal*ContingencyPct)
}

// CalculateCAS30 populates the indirect-cost account using the
// negative-half-power scaling law
//
//	cost = (P_net/150)^-0.5 x P_net x factor x construction_years
//
// guarded to return zero when net power is non-positive: an invalid power
// balance must surface as zero-valued downstream costs, never as a complex
// number or a division by zero.
func CalculateCAS30(data *CostingData) {
	acc := &data.Accounts.CAS30
	acc.Code = "CAS 30"

	pnet := data.Basic.PNetMW
	if pnet <= 0 {
		return
	}

	cost := math.Pow(pnet/150, -0.5) * pnet * data.CASIn.IndirectFactor * data.Basic.ConstructionYears
	acc.Add("indirect_costs", cost)
}

// CalculateCAS40 populates owner costs as a regulatory-tier-dependent
// percentage of the direct-capital subtotal.
func CalculateCAS40(data *CostingData) {
	acc := &data.Accounts.CAS40
	acc.Code = "CAS 40"
	acc.Add("owner_costs", data.Totals.DirectCapital*lsaOwnerCostPct[data.Basic.LSA])
}

// CalculateCAS50and60 populates the capitalized supplementary and financial
// accounts as flat fractions of direct capital.
func CalculateCAS50and60(data *CostingData) {
	supp := &data.Accounts.CAS50
	supp.Code = "CAS 50"
	supp.Add("capitalized_supplementary", data.Totals.DirectCapital*data.CASIn.CapitalizedPct)

	fin := &data.Accounts.CAS60
	fin.Code = "CAS 60"
	fin.Add("capitalized_financial", data.Totals.DirectCapital*data.CASIn.CapitalizedPct)
}
