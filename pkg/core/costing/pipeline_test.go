package costing

import (
	"math"
	"testing"
)

// referenceTokamak is the end-to-end reference design: 500 MW fusion, Q=10,
// DT, HTS magnets, R=6.2 m, a=2.0 m, 0.85 m blanket, 0.75 m shield.
func referenceTokamak() map[string]interface{} {
	return map[string]interface{}{
		"reactor_type":      "tokamak",
		"fuel_type":         "DT",
		"fusion_power_mw":   500.0,
		"q_plasma":          10.0,
		"magnet_type":       "HTS",
		"major_radius":      6.2,
		"minor_radius":      2.0,
		"blanket_thickness": 0.85,
		"shield_thickness":  0.75,
	}
}

func TestEndToEndReferenceTokamak(t *testing.T) {
	results, err := NewCostingPipeline().Run(referenceTokamak())
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	pb := results["power_balance"].(map[string]float64)
	if pb["net_electric"] <= 0 {
		t.Errorf("Expected positive net power, got %.2f", pb["net_electric"])
	}

	qEng := results["q_eng"].(float64)
	if qEng < 1 || qEng > 20 {
		t.Errorf("Q_eng %.2f outside sanity band [1, 20]", qEng)
	}

	// EPC sanity band: roughly 2 to 20 billion dollars.
	epc := results["total_epc_cost"].(float64)
	if epc < 2000 || epc > 20000 {
		t.Errorf("total EPC %.0f M$ outside sanity band [2000, 20000]", epc)
	}

	// Energy-conservation bound over the flat output.
	if !(0 <= pb["net_electric"] &&
		pb["net_electric"] <= pb["gross_electric"] &&
		pb["gross_electric"] <= pb["thermal_power"]) {
		t.Errorf("power ordering violated: %+v", pb)
	}

	// Total capital cost and total EPC cost are one quantity.
	if results["total_capital_cost"].(float64) != epc {
		t.Error("total_capital_cost must equal total_epc_cost exactly")
	}
}

func TestEndToEndCopperMagnetsCostMoreAndRecirculateMore(t *testing.T) {
	pipe := NewCostingPipeline()

	htsRes, err := pipe.Run(referenceTokamak())
	if err != nil {
		t.Fatalf("HTS run failed: %v", err)
	}

	cfg := referenceTokamak()
	cfg["magnet_type"] = "Copper"
	cuRes, err := pipe.Run(cfg)
	if err != nil {
		t.Fatalf("Copper run failed: %v", err)
	}

	// Resistive coils need a far larger winding volume, so the magnet
	// account rises even though the conductor is cheaper per kilogram.
	if cuRes["cas_2203"].(float64) <= htsRes["cas_2203"].(float64) {
		t.Errorf("Copper magnet cost %.1f should exceed HTS %.1f",
			cuRes["cas_2203"], htsRes["cas_2203"])
	}
	if cuRes["q_eng"].(float64) >= htsRes["q_eng"].(float64) {
		t.Errorf("Copper Q_eng %.3f should be below HTS %.3f",
			cuRes["q_eng"], htsRes["q_eng"])
	}
}

func TestEndToEndIFEZeroMagnets(t *testing.T) {
	results, err := NewCostingPipeline().Run(map[string]interface{}{
		"reactor_type":       "IFE",
		"fuel_type":          "DT",
		"target_yield_mj":    300.0,
		"repetition_rate_hz": 3.0,
		"heating_power_mw":   20.0,
		"driver_efficiency":  0.10,
		"minor_radius":       5.0, // chamber radius
	})
	if err != nil {
		t.Fatalf("IFE pipeline failed: %v", err)
	}
	if got := results["cas_2203"].(float64); got != 0 {
		t.Errorf("IFE magnet cost must be exactly 0, got %f", got)
	}
}

func TestCAS22TotalEqualsSubAccounts(t *testing.T) {
	data, err := NewCostingPipeline().Evaluate(referenceTokamak())
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	a := &data.Accounts
	want := a.CAS2201.Total() + a.CAS2202.Total() + a.CAS2203.Total() +
		a.CAS2204.Total() + a.CAS2205.Total() + a.CAS2206.Total() +
		a.CAS2207.Total()
	if got := a.CAS22.Total(); math.Abs(got-want) > 1e-9 {
		t.Errorf("CAS 22 total %.6f != sum of sub-accounts %.6f", got, want)
	}

	// Re-aggregating with unchanged inputs is bit-identical.
	before := a.CAS22.Total()
	AggregateCAS22(data)
	if a.CAS22.Total() != before {
		t.Error("AggregateCAS22 is not idempotent")
	}

	direct := data.Totals.DirectCapital
	AggregateDirectCapital(data)
	if data.Totals.DirectCapital != direct {
		t.Error("AggregateDirectCapital is not idempotent")
	}
}

func TestInvalidPowerBalancePropagatesZeroCosts(t *testing.T) {
	// Q=1 with copper magnets: recirculating power swamps the gross
	// output, so net power goes negative. The run must not error by
	// default; CAS 30 must be exactly zero, never complex or NaN.
	results, err := NewCostingPipeline().Run(map[string]interface{}{
		"reactor_type":     "tokamak",
		"fuel_type":        "DT",
		"q_plasma":         1.0,
		"heating_power_mw": 50.0,
		"magnet_type":      "copper",
	})
	if err != nil {
		t.Fatalf("invalid power balance must not raise by default: %v", err)
	}

	pb := results["power_balance"].(map[string]float64)
	if pb["net_electric"] >= 0 {
		t.Fatalf("test setup wrong: expected negative net power, got %.2f", pb["net_electric"])
	}

	got := results["cas_30_indirect"].(float64)
	if got != 0 || math.IsNaN(got) {
		t.Errorf("CAS 30 must be exactly 0.0 for non-positive net power, got %v", got)
	}

	// Strict mode reports the same condition as an error instead.
	strict := NewCostingPipeline()
	strict.SetValidationConfig(ValidationConfig{EnableStrictValidation: true, PowerTolerance: 1e-9})
	if _, err := strict.Run(map[string]interface{}{
		"reactor_type":     "tokamak",
		"fuel_type":        "DT",
		"q_plasma":         1.0,
		"heating_power_mw": 50.0,
		"magnet_type":      "copper",
	}); err == nil {
		t.Error("strict validation should reject a non-positive net power")
	}
}

func TestRunIsPureFunctionOfInput(t *testing.T) {
	pipe := NewCostingPipeline()
	cfg := referenceTokamak()

	first, err := pipe.Run(cfg)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := pipe.Run(cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for _, key := range []string{"total_epc_cost", "cas_22_total", "q_eng", "cost_per_kw_net"} {
		if first[key].(float64) != second[key].(float64) {
			t.Errorf("%s differs across identical runs: %v vs %v", key, first[key], second[key])
		}
	}
}

func TestProjectorFlatKeys(t *testing.T) {
	results, err := NewCostingPipeline().Run(referenceTokamak())
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	for _, key := range []string{
		"power_balance", "q_eng", "volumes",
		"cas_21_total", "cas_22_total", "cas_2201", "cas_2203", "cas_2207",
		"firstwall", "blanket", "shield", "divertor",
		"cas_23_turbine", "cas_28_instrumentation", "cas_29_contingency",
		"cas_30_indirect", "cas_40_owner_costs",
		"total_capital_cost", "total_epc_cost", "cost_per_kw_net", "epc_per_kw_net",
		"costing_fixed_om_per_mw", "costing_annual_fuel_cost",
	} {
		if _, ok := results[key]; !ok {
			t.Errorf("flat output missing key %q", key)
		}
	}

	vols := results["volumes"].(map[string]float64)
	for _, comp := range []string{"first_wall", "blanket", "shield"} {
		if vols[comp] <= 0 {
			t.Errorf("volume %s should be positive, got %f", comp, vols[comp])
		}
	}
}
