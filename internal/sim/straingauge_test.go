package sim

import (
	"math"
	"testing"
)

func referenceInputs() StrainGaugeInputs {
	return StrainGaugeInputs{
		ForceN:           50,
		YoungsModulusGPa: 200,
		GaugeFactor:      2,
		ExcitationV:      5,
		TemperatureC:     referenceTempC,
	}
}

func TestBridgeOutputScalesLinearlyWithForce(t *testing.T) {
	in := referenceInputs()
	base := ComputeStrainGauge(in).BridgeOutputMV

	in.ForceN = 100
	doubled := ComputeStrainGauge(in).BridgeOutputMV

	if math.Abs(doubled-2*base) > 1e-9 {
		t.Errorf("doubling force: output %v, want %v", doubled, 2*base)
	}
}

func TestBridgeOutputMonotonicInForce(t *testing.T) {
	in := referenceInputs()
	prev := math.Inf(-1)
	for f := 0.0; f <= 200; f += 5 {
		in.ForceN = f
		out := ComputeStrainGauge(in).BridgeOutputMV
		if out <= prev && f > 0 {
			t.Fatalf("output not increasing at %v N: %v <= %v", f, out, prev)
		}
		prev = out
	}
}

func TestStifferMaterialReadsLowerStrain(t *testing.T) {
	in := referenceInputs()
	in.YoungsModulusGPa = 70 // aluminium
	soft := ComputeStrainGauge(in).MechStrain
	in.YoungsModulusGPa = 200 // steel
	stiff := ComputeStrainGauge(in).MechStrain

	if stiff >= soft {
		t.Errorf("steel strain %v should be below aluminium strain %v", stiff, soft)
	}
	// Same load means the same bending stress either way.
	in.YoungsModulusGPa = 70
	s1 := ComputeStrainGauge(in).BendingStressMPa
	in.YoungsModulusGPa = 200
	s2 := ComputeStrainGauge(in).BendingStressMPa
	if s1 != s2 {
		t.Errorf("stress depends on modulus: %v vs %v", s1, s2)
	}
}

func TestDummyGaugeCancelsThermalStrain(t *testing.T) {
	in := referenceInputs()
	in.TemperatureC = 60

	d := ComputeStrainGauge(in)
	wantThermal := thermalCoeff * (60 - referenceTempC)
	if math.Abs(d.ThermalStrain-wantThermal) > 1e-12 {
		t.Errorf("thermal strain %v, want %v", d.ThermalStrain, wantThermal)
	}

	in.UseDummyGauge = true
	d = ComputeStrainGauge(in)
	if d.ThermalStrain != 0 {
		t.Errorf("dummy gauge left thermal strain %v", d.ThermalStrain)
	}
	if d.EffectiveStrain != d.MechStrain {
		t.Errorf("effective %v should equal mechanical %v with dummy gauge", d.EffectiveStrain, d.MechStrain)
	}
}

func TestThermalDriftAtZeroForce(t *testing.T) {
	// The twist scenario: no load, hot gauge, no compensation. The bridge
	// still reads a signal.
	in := referenceInputs()
	in.ForceN = 0
	in.TemperatureC = 60
	d := ComputeStrainGauge(in)
	if d.BridgeOutputMV <= 0 {
		t.Errorf("uncompensated hot gauge at zero load read %v mV, want > 0", d.BridgeOutputMV)
	}

	in.UseDummyGauge = true
	d = ComputeStrainGauge(in)
	if d.BridgeOutputMV != 0 {
		t.Errorf("compensated bridge at zero load read %v mV, want 0", d.BridgeOutputMV)
	}
}

func TestFullBridgeQuadruplesOutput(t *testing.T) {
	in := referenceInputs()
	quarter := ComputeStrainGauge(in).BridgeOutputMV
	in.FullBridge = true
	full := ComputeStrainGauge(in).BridgeOutputMV

	if math.Abs(full-4*quarter) > 1e-9 {
		t.Errorf("full bridge %v, want 4x quarter %v", full, quarter)
	}
}

func TestComputeTotalOverInputGrid(t *testing.T) {
	for _, f := range []float64{0, 100, 200} {
		for _, e := range []float64{50, 200, 400} {
			for _, gf := range []float64{1, 5} {
				for _, temp := range []float64{-20, 20, 60} {
					for _, dummy := range []bool{false, true} {
						d := ComputeStrainGauge(StrainGaugeInputs{
							ForceN: f, YoungsModulusGPa: e, GaugeFactor: gf,
							ExcitationV: 12, TemperatureC: temp, UseDummyGauge: dummy,
						})
						if math.IsNaN(d.BridgeOutputMV) || math.IsInf(d.BridgeOutputMV, 0) {
							t.Fatalf("non-finite output for F=%v E=%v GF=%v T=%v", f, e, gf, temp)
						}
					}
				}
			}
		}
	}
}

func TestZeroModulusGuard(t *testing.T) {
	d := ComputeStrainGauge(StrainGaugeInputs{ForceN: 100, YoungsModulusGPa: 0, GaugeFactor: 2, ExcitationV: 5, TemperatureC: 20})
	if math.IsNaN(d.MechStrain) || math.IsInf(d.MechStrain, 0) {
		t.Fatalf("hostile zero modulus produced %v", d.MechStrain)
	}
}

func TestStrainGaugeSnapshotRoundTrip(t *testing.T) {
	s := NewStrainGauge()
	s.Inputs.ForceN = 120
	s.Inputs.UseDummyGauge = true
	s.Inputs.FullBridge = true

	fresh := NewStrainGauge()
	fresh.Restore(s.Snapshot())
	if fresh.Inputs != s.Inputs {
		t.Errorf("round trip mismatch: %+v vs %+v", fresh.Inputs, s.Inputs)
	}

	fresh.Restore(map[string]float64{"force_n": 1e9, "modulus_gpa": -3})
	if fresh.Inputs.ForceN != 200 || fresh.Inputs.YoungsModulusGPa != 50 {
		t.Errorf("restore did not clamp: %+v", fresh.Inputs)
	}
}
