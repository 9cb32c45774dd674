package costing

import (
	"math"
	"testing"
)

// dtTokamak builds the reference magnetic-confinement input: 500 MW fusion,
// Q=10 (so 50 MW heating), M_n=1.1, eta_th=0.40, HTS magnets.
func dtTokamak() *CostingData {
	data := NewCostingData()
	data.PowerIn.FusionPowerMW = 500
	data.PowerIn.QPlasma = 10
	data.PowerIn.HeatingPowerMW = 50
	return data
}

func TestMagneticPowerBalanceDT(t *testing.T) {
	data := dtTokamak()
	if err := CalculatePowerBalance(data); err != nil {
		t.Fatalf("CalculatePowerBalance failed: %v", err)
	}
	out := data.Power

	// Alpha fraction for DT is 3.52/17.58; neutron fraction the rest.
	// alpha   = 500 x (3.52/17.58)
	// neutron = 500 x (1 - 3.52/17.58) x 1.1
	// thermal = neutron + alpha + 50
	charged := 3.52 / 17.58
	alpha := 500 * charged
	neutron := 500 * (1 - charged) * 1.1
	thermal := neutron + alpha + 50

	if math.Abs(out.AlphaPower-alpha) > 1e-9 {
		t.Errorf("Expected alpha %.4f, got %.4f", alpha, out.AlphaPower)
	}
	if math.Abs(out.ThermalPower-thermal) > 1e-9 {
		t.Errorf("Expected thermal %.4f, got %.4f", thermal, out.ThermalPower)
	}

	// gross = thermal x 0.40; recirc = magnets + cryo + heating + pumps + aux
	gross := thermal * 0.40
	recirc := thermal*MagnetPowerFracHTS + thermal*CryoPowerFracHTS + 50 +
		thermal*PumpingPowerFrac + thermal*AuxPowerFrac
	net := gross - recirc

	if math.Abs(out.GrossElectric-gross) > 1e-9 {
		t.Errorf("Expected gross %.4f, got %.4f", gross, out.GrossElectric)
	}
	if math.Abs(out.NetElectric-net) > 1e-9 {
		t.Errorf("Expected net %.4f, got %.4f", net, out.NetElectric)
	}
	if math.Abs(out.QEngineering-net/recirc) > 1e-9 {
		t.Errorf("Expected Q_eng %.4f, got %.4f", net/recirc, out.QEngineering)
	}

	// Energy-conservation ordering: 0 <= net <= gross <= thermal.
	if !(0 <= out.NetElectric && out.NetElectric <= out.GrossElectric && out.GrossElectric <= out.ThermalPower) {
		t.Errorf("power ordering violated: net=%.2f gross=%.2f thermal=%.2f",
			out.NetElectric, out.GrossElectric, out.ThermalPower)
	}

	// The headline figures must be published for downstream stages.
	if data.Basic.PThermalMW != out.ThermalPower || data.Basic.PNetMW != out.NetElectric {
		t.Error("power balance did not update Basic.PThermalMW / Basic.PNetMW")
	}
}

func TestCopperMagnetsLowerQEng(t *testing.T) {
	hts := dtTokamak()
	if err := CalculatePowerBalance(hts); err != nil {
		t.Fatalf("HTS balance failed: %v", err)
	}

	copper := dtTokamak()
	copper.Basic.MagnetType = MagnetCopper
	if err := CalculatePowerBalance(copper); err != nil {
		t.Fatalf("Copper balance failed: %v", err)
	}

	// Resistive coils trade cryogenics for a much larger magnet draw, so
	// recirculating power rises and engineering Q falls.
	if copper.Power.Recirculating <= hts.Power.Recirculating {
		t.Errorf("Copper recirculating %.2f should exceed HTS %.2f",
			copper.Power.Recirculating, hts.Power.Recirculating)
	}
	if copper.Power.QEngineering >= hts.Power.QEngineering {
		t.Errorf("Copper Q_eng %.3f should be below HTS %.3f",
			copper.Power.QEngineering, hts.Power.QEngineering)
	}
	if copper.Power.CryoPower != 0 {
		t.Errorf("Resistive magnets need no cryo power, got %.3f", copper.Power.CryoPower)
	}
}

func TestInertialPowerBalance(t *testing.T) {
	data := NewCostingData()
	data.Basic.ReactorType = InertialFusion
	data.PowerIn.TargetYieldMJ = 300
	data.PowerIn.RepRateHz = 3
	data.PowerIn.HeatingPowerMW = 20 // beam power on target
	data.PowerIn.DriverEfficiency = 0.10

	if err := CalculatePowerBalance(data); err != nil {
		t.Fatalf("CalculatePowerBalance failed: %v", err)
	}
	out := data.Power

	// fusion = 300 MJ/shot x 3 Hz = 900 MW
	if math.Abs(out.FusionPower-900) > 1e-9 {
		t.Errorf("Expected 900 MW fusion, got %.2f", out.FusionPower)
	}
	// driver draw = 20 / 0.10 = 200 MW
	if math.Abs(out.HeatingPower-200) > 1e-9 {
		t.Errorf("Expected 200 MW driver draw, got %.2f", out.HeatingPower)
	}
	if out.MagnetPower != 0 || out.CryoPower != 0 {
		t.Error("IFE has no magnet or cryo loads")
	}
}

func TestQEngZeroWhenNoRecirculation(t *testing.T) {
	data := NewCostingData()
	data.Basic.ReactorType = InertialFusion
	// No yield, no driver: everything is zero, including recirculation.
	data.PowerIn = PowerInput{}

	if err := CalculatePowerBalance(data); err != nil {
		t.Fatalf("CalculatePowerBalance failed: %v", err)
	}
	if data.Power.QEngineering != 0 {
		t.Errorf("Q_eng must be exactly 0 with zero recirculating power, got %v", data.Power.QEngineering)
	}
	if math.IsNaN(data.Power.QEngineering) || math.IsInf(data.Power.QEngineering, 0) {
		t.Error("Q_eng must never be NaN or Inf")
	}
}

func TestDirectPowerOverrides(t *testing.T) {
	// Benchmark designs (e.g. a fission reference plant) supply thermal
	// and net power directly instead of fusion inputs.
	data := NewCostingData()
	data.Basic.PThermalMW = 3000
	data.Basic.PNetMW = 1000

	if err := CalculatePowerBalance(data); err != nil {
		t.Fatalf("CalculatePowerBalance failed: %v", err)
	}
	if data.Power.ThermalPower != 3000 {
		t.Errorf("thermal override lost: %v", data.Power.ThermalPower)
	}
	if data.Power.NetElectric != 1000 {
		t.Errorf("net override lost: %v", data.Power.NetElectric)
	}
	// gross = 3000 x 0.40 = 1200; recirculation fills the gap to net.
	if math.Abs(data.Power.Recirculating-200) > 1e-9 {
		t.Errorf("Expected 200 MW recirculating, got %v", data.Power.Recirculating)
	}
}

func TestUnrecognizedReactorTypeIsFatal(t *testing.T) {
	data := NewCostingData()
	data.Basic.ReactorType = ReactorType(99)

	if err := CalculatePowerBalance(data); err == nil {
		t.Fatal("Expected fatal error for unrecognized reactor type")
	}
}
