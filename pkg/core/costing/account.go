package costing

// Line is one sub-line of a CAS cost account, in M$.
type Line struct {
	Name string
	Cost float64
}

// Account is one CAS cost account: a code, its sub-lines and a total that is
// always recomputed from the sub-lines, never stored independently. Each
// account is written exactly once by its owning calculator.
type Account struct {
	Code  string
	Lines []Line
}

// Add appends a sub-line to the account.
func (a *Account) Add(name string, cost float64) {
	a.Lines = append(a.Lines, Line{Name: name, Cost: cost})
}

// Total returns the sum of the sub-lines. Calling it twice with unchanged
// sub-lines yields bit-identical results (fixed summation order, no state).
func (a *Account) Total() float64 {
	var sum float64
	for _, l := range a.Lines {
		sum += l.Cost
	}
	return sum
}

// Accounts holds every CAS account of the breakdown. Zero-initialized at
// pipeline start; sub-accounts of CAS 22 are rolled up by the aggregator.
type Accounts struct {
	CAS10 Account // pre-construction: land, permits, plant studies

	CAS21 Account // buildings and site structures

	CAS220101 Account // reactor core: first wall, blanket, shield
	CAS2201   Account // reactor equipment roll-up (core + divertor)
	CAS2202   Account // main heat transfer and transport
	CAS2203   Account // magnets (zero for inertial fusion)
	CAS2204   Account // supplemental heating / driver
	CAS2205   Account // primary structure and support
	CAS2206   Account // vacuum systems
	CAS2207   Account // power supplies
	CAS22     Account // reactor plant equipment roll-up

	CAS23 Account // turbine plant equipment
	CAS24 Account // electric plant equipment
	CAS25 Account // miscellaneous plant equipment
	CAS26 Account // heat rejection
	CAS27 Account // special materials (coolant/breeder inventory)
	CAS28 Account // instrumentation and control

	CAS29 Account // contingency on direct costs
	CAS30 Account // indirect costs
	CAS40 Account // owner costs
	CAS50 Account // capitalized supplementary costs
	CAS60 Account // capitalized financial costs

	CAS70 Account // annualized O&M (M$/yr)
	CAS80 Account // annualized fuel (M$/yr)
	CAS90 Account // annualized financial (M$/yr)
}
