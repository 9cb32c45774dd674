package costing

import (
	"math"
	"testing"
)

func TestAccountTotalIsSumOfLines(t *testing.T) {
	var acc Account
	acc.Code = "CAS 99"
	acc.Add("a", 1.25)
	acc.Add("b", 2.50)
	acc.Add("c", 0.25)

	want := 1.25 + 2.50 + 0.25
	if acc.Total() != want {
		t.Errorf("Expected %.2f, got %.2f", want, acc.Total())
	}
	// Recomputing with unchanged sub-lines is bit-identical.
	if acc.Total() != acc.Total() {
		t.Error("Total is not idempotent")
	}
}

func TestNonDTBuildingScaling(t *testing.T) {
	mk := func(fuel FuelType) *CostingData {
		data := NewCostingData()
		data.Basic.FuelType = fuel
		data.Basic.PThermalMW = 600
		CalculateCAS21(data)
		return data
	}

	dt := mk(FuelDT)
	dd := mk(FuelDD)

	lineCost := func(d *CostingData, name string) float64 {
		for _, l := range d.Accounts.CAS21.Lines {
			if l.Name == name {
				return l.Cost
			}
		}
		t.Fatalf("line %s missing", name)
		return 0
	}

	// Non-DT cycles need half the tritium-handling infrastructure:
	// exactly 0.5x on reactor, turbine and hot-cell buildings.
	for _, name := range []string{"reactor_building", "turbine_building", "hot_cell"} {
		if got, want := lineCost(dd, name), 0.5*lineCost(dt, name); math.Abs(got-want) > 1e-12 {
			t.Errorf("%s: expected exactly %.6f, got %.6f", name, want, got)
		}
	}
	// Buildings without tritium systems are unchanged.
	if lineCost(dd, "site_improvements") != lineCost(dt, "site_improvements") {
		t.Error("site improvements should not scale with fuel cycle")
	}
}

func TestFOAKAddsBuildingContingency(t *testing.T) {
	noak := NewCostingData()
	noak.Basic.PThermalMW = 600
	CalculateCAS21(noak)

	foak := NewCostingData()
	foak.Basic.PThermalMW = 600
	foak.Basic.FOAK = true
	CalculateCAS21(foak)

	want := noak.Accounts.CAS21.Total() * (1 + FOAKBuildingPct)
	if got := foak.Accounts.CAS21.Total(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected FOAK buildings %.4f, got %.4f", want, got)
	}
}

func TestIFEMagnetCostIsZero(t *testing.T) {
	data := NewCostingData()
	data.Basic.ReactorType = InertialFusion
	data.Basic.PThermalMW = 900
	if err := CalculateGeometry(data); err != nil {
		t.Fatalf("geometry failed: %v", err)
	}
	if err := CalculateCAS2203(data); err != nil {
		t.Fatalf("CalculateCAS2203 failed: %v", err)
	}
	if got := data.Accounts.CAS2203.Total(); got != 0 {
		t.Errorf("IFE designs must have exactly zero magnet cost, got %f", got)
	}
}

func TestMagneticMagnetCostIsNonzero(t *testing.T) {
	for _, rt := range []ReactorType{Tokamak, Mirror} {
		data := NewCostingData()
		data.Basic.ReactorType = rt
		data.Basic.PThermalMW = 600
		if err := CalculateGeometry(data); err != nil {
			t.Fatalf("geometry failed: %v", err)
		}
		if err := CalculateCAS2203(data); err != nil {
			t.Fatalf("CalculateCAS2203 failed: %v", err)
		}
		if data.Accounts.CAS2203.Total() <= 0 {
			t.Errorf("%v with nonzero thermal power must have nonzero magnet cost", rt)
		}
	}
}

func TestCAS30ZeroAtNonPositiveNetPower(t *testing.T) {
	data := NewCostingData()
	data.Basic.PNetMW = 0
	CalculateCAS30(data)
	if got := data.Accounts.CAS30.Total(); got != 0 {
		t.Errorf("CAS 30 must be exactly 0 at p_net=0, got %v", got)
	}

	data.Basic.PNetMW = -25
	CalculateCAS30(data)
	got := data.Accounts.CAS30.Total()
	if got != 0 || math.IsNaN(got) {
		t.Errorf("CAS 30 must be exactly 0 at negative p_net, got %v", got)
	}
}

func TestCAS30ScalingLaw(t *testing.T) {
	data := NewCostingData()
	data.Basic.PNetMW = 150 // the pivot point, where the scaling term is 1
	data.Basic.ConstructionYears = 6
	data.CASIn.IndirectFactor = 0.5
	CalculateCAS30(data)

	// (150/150)^-0.5 x 150 x 0.5 x 6 = 450
	want := 450.0
	if got := data.Accounts.CAS30.Total(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %.1f M$, got %.4f M$", want, got)
	}
}

func TestCAS40OwnerCostByLSA(t *testing.T) {
	direct := 3000.0
	wantPct := map[LSALevel]float64{LSA1: 0.07, LSA2: 0.10, LSA3: 0.14, LSA4: 0.18}

	for lsa, pct := range wantPct {
		data := NewCostingData()
		data.Basic.LSA = lsa
		data.Totals.DirectCapital = direct
		CalculateCAS40(data)
		if got := data.Accounts.CAS40.Total(); math.Abs(got-direct*pct) > 1e-9 {
			t.Errorf("LSA %d: expected %.1f, got %.4f", lsa, direct*pct, got)
		}
	}
}

func TestBlanketDispatchByCoolant(t *testing.T) {
	run := func(coolant BlanketCoolant) *CostingData {
		data := NewCostingData()
		data.Basic.Coolant = coolant
		if err := CalculateGeometry(data); err != nil {
			t.Fatalf("geometry failed: %v", err)
		}
		if err := CalculateCAS220101(data); err != nil {
			t.Fatalf("CAS 22.01.01 failed: %v", err)
		}
		return data
	}

	lines := func(d *CostingData) map[string]float64 {
		out := map[string]float64{}
		for _, l := range d.Accounts.CAS220101.Lines {
			out[l.Name] = l.Cost
		}
		return out
	}

	// Helium coolant: solid breeder plus separate neutron multiplier.
	he := lines(run(CoolantHelium))
	if he["blanket_breeder"] <= 0 || he["blanket_multiplier"] <= 0 {
		t.Errorf("helium blanket needs breeder and multiplier lines: %v", he)
	}

	// FLiBe is self-breeding: coolant as breeder, no multiplier line.
	fl := lines(run(CoolantFLiBe))
	if fl["blanket_breeder"] <= 0 {
		t.Errorf("flibe blanket needs a breeder line: %v", fl)
	}
	if _, ok := fl["blanket_multiplier"]; ok {
		t.Errorf("self-breeding blanket must not have a multiplier line: %v", fl)
	}
}

func TestCAS29OnlyForFOAK(t *testing.T) {
	mk := func(foak bool) *CostingData {
		data := NewCostingData()
		data.Basic.FOAK = foak
		data.Basic.PThermalMW = 600
		CalculateCAS21(data)
		CalculateCAS23to28(data)
		CalculateCAS29(data)
		return data
	}

	if got := mk(false).Accounts.CAS29.Total(); got != 0 {
		t.Errorf("NOAK contingency should be 0, got %f", got)
	}

	foak := mk(true)
	a := &foak.Accounts
	subtotal := a.CAS21.Total() + a.CAS22.Total() + a.CAS23.Total() +
		a.CAS24.Total() + a.CAS25.Total() + a.CAS26.Total() +
		a.CAS27.Total() + a.CAS28.Total()
	if got, want := foak.Accounts.CAS29.Total(), subtotal*ContingencyPct; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected FOAK contingency %.4f, got %.4f", want, got)
	}
}
